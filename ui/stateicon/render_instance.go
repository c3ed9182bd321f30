package stateicon

import (
	"context"
	"image"
	"log"

	"stateicon-ebiten/core"

	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// 表示状態
const (
	StateIdle  = "idle"
	StatePaged = "paged"
)

const (
	eventShow  = "show"
	eventClear = "clear"
)

// RenderInstance はエンティティ1体分のアイコン表示状態です。
// 所有者はステータスウィンドウの行で、行が破棄されるとこのインスタンスも破棄されます。
type RenderInstance struct {
	entity        donburi.Entity
	elapsedFrames int
	pageSize      int
	pageDuration  int

	entries   []core.DisplayEntry
	pageIndex int
	pageCount int

	composite *image.RGBA
	version   int
	composed  bool
	dirty     bool

	anchorX, anchorY float64
	visible          bool

	state *fsm.FSM
}

// NewRenderInstance はページサイズと表示フレーム数を固定したインスタンスを作成します。
func NewRenderInstance(entity donburi.Entity, pageSize, pageDurationFrames int) *RenderInstance {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageDurationFrames < 1 {
		pageDurationFrames = 1
	}
	return &RenderInstance{
		entity:       entity,
		pageSize:     pageSize,
		pageDuration: pageDurationFrames,
		state: fsm.NewFSM(
			StateIdle,
			fsm.Events{
				{Name: eventShow, Src: []string{StateIdle}, Dst: StatePaged},
				{Name: eventClear, Src: []string{StatePaged}, Dst: StateIdle},
			},
			fsm.Callbacks{},
		),
	}
}

func (ri *RenderInstance) Entity() donburi.Entity  { return ri.entity }
func (ri *RenderInstance) ElapsedFrames() int      { return ri.elapsedFrames }
func (ri *RenderInstance) PageSize() int           { return ri.pageSize }
func (ri *RenderInstance) PageDurationFrames() int { return ri.pageDuration }
func (ri *RenderInstance) PageIndex() int          { return ri.pageIndex }
func (ri *RenderInstance) PageCount() int          { return ri.pageCount }
func (ri *RenderInstance) Visible() bool           { return ri.visible }

// Anchor はアイコン列の水平中心と上端の座標を返します。
func (ri *RenderInstance) Anchor() (float64, float64) {
	return ri.anchorX, ri.anchorY
}

// Composite は現在表示中の画像を返します。表示するものがなければ nil です。
func (ri *RenderInstance) Composite() *image.RGBA {
	return ri.composite
}

// Version は画像が差し替えられるたびに増えます。描画側のキャッシュ更新判定に使います。
func (ri *RenderInstance) Version() int {
	return ri.version
}

// Entries は直近の集約結果のコピーを返します。
func (ri *RenderInstance) Entries() []core.DisplayEntry {
	out := make([]core.DisplayEntry, len(ri.entries))
	copy(out, ri.entries)
	return out
}

// State は現在の表示状態 (idle / paged) を返します。
func (ri *RenderInstance) State() string {
	return ri.state.Current()
}

// place はアンカーを上書きして表示状態にします。
func (ri *RenderInstance) place(x, y float64) {
	ri.anchorX, ri.anchorY = x, y
	ri.visible = true
}

func (ri *RenderInstance) hide() {
	ri.visible = false
}

// setComposite は画像を差し替えます。大きさ0の画像は「表示なし」として扱います。
func (ri *RenderInstance) setComposite(img *image.RGBA) {
	if img != nil && img.Bounds().Empty() {
		img = nil
	}
	ri.composed = true
	ri.dirty = false
	if img == nil && ri.composite == nil {
		return
	}
	ri.composite = img
	ri.version++
}

// syncState はページ数に合わせて idle / paged を切り替えます。
func (ri *RenderInstance) syncState() {
	event := eventShow
	if ri.pageCount == 0 {
		event = eventClear
	}
	if !ri.state.Can(event) {
		return
	}
	if err := ri.state.Event(context.Background(), event); err != nil {
		log.Printf("アイコン表示状態の遷移に失敗しました (entity=%v, event=%s): %v", ri.entity, event, err)
	}
}
