package stateicon

import (
	"fmt"
	"strings"
)

// Driver は毎フレーム1回呼ばれ、各インスタンスの集約・ページ選択・合成を進めます。
type Driver struct {
	aggregator        *Aggregator
	compositor        *Compositor
	positioner        *Positioner
	advanceWhenHidden bool
}

func NewDriver(aggregator *Aggregator, compositor *Compositor, positioner *Positioner, advanceWhenHidden bool) *Driver {
	return &Driver{
		aggregator:        aggregator,
		compositor:        compositor,
		positioner:        positioner,
		advanceWhenHidden: advanceWhenHidden,
	}
}

// Tick は全インスタンスを1フレーム進めます。
func (d *Driver) Tick() {
	for _, inst := range d.positioner.Instances() {
		d.tickInstance(inst)
	}
}

func (d *Driver) tickInstance(inst *RenderInstance) {
	if !inst.visible && !d.advanceWhenHidden {
		return
	}

	// 同一フレーム内では、この集約結果だけを使ってページ選択と合成を行う
	entries := d.aggregator.Aggregate(inst.entity)

	inst.elapsedFrames++
	count := PageCount(len(entries), inst.pageSize)
	if count == 0 {
		inst.elapsedFrames = 0
	} else if cycle := count * inst.pageDuration; inst.elapsedFrames >= cycle {
		inst.elapsedFrames %= cycle
	}

	page := SelectPage(entries, inst.elapsedFrames, inst.pageSize, inst.pageDuration)
	if !inst.composed || page.Index != inst.pageIndex || !sameEntries(entries, inst.entries) {
		inst.dirty = true
	}
	inst.entries = entries
	inst.pageIndex = page.Index
	inst.pageCount = page.Count
	inst.syncState()

	if !inst.dirty {
		return
	}
	img, ok := d.compositor.Compose(page.Entries)
	if !ok {
		// アトラス未準備。前回の画像を残したまま次フレームで再試行する
		return
	}
	inst.setComposite(img)
}

// Dump は各インスタンスの現在ページをテキストで返します。デバッグ用です。
func (d *Driver) Dump(label func(inst *RenderInstance) string) string {
	var sb strings.Builder
	for _, inst := range d.positioner.Instances() {
		name := fmt.Sprintf("%v", inst.entity)
		if label != nil {
			name = label(inst)
		}
		shown := 0
		if inst.pageCount > 0 {
			shown = inst.pageIndex + 1
		}
		fmt.Fprintf(&sb, "%s state=%s page=%d/%d frame=%d visible=%t anchor=(%.0f,%.0f)",
			name, inst.State(), shown, inst.pageCount, inst.elapsedFrames, inst.visible, inst.anchorX, inst.anchorY)
		for _, e := range inst.entries {
			fmt.Fprintf(&sb, " [%d:%d]", e.IconIndex, e.RemainingTurns)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
