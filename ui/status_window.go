package ui

import (
	"slices"

	"stateicon-ebiten/core"
	"stateicon-ebiten/ecs/component"
	"stateicon-ebiten/ecs/entity"
	"stateicon-ebiten/ui/stateicon"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi"
)

type statusRow struct {
	entity    donburi.Entity
	container *widget.Container
}

// StatusWindow は名簿上のバトラーを1行ずつ並べるウィンドウです。
// 行の並び替えと破棄を管理し、再描画のたびに各行のステートアイコンを配置します。
type StatusWindow struct {
	newRow     rowBuilder
	positioner *stateicon.Positioner
	container  *widget.Container
	parent     *widget.Container

	rows    map[donburi.Entity]*statusRow
	order   []donburi.Entity
	visible bool
}

// rowBuilder はバトラー1行分のコンテナを生成します。
type rowBuilder func(name string, team core.TeamID) *widget.Container

// NewStatusWindow は新しいStatusWindowを作成します。
func NewStatusWindow(factory *UIFactory, positioner *stateicon.Positioner) *StatusWindow {
	return newStatusWindow(factory.NewStatusWindowContainer(), factory.NewStatusRow, positioner)
}

func newStatusWindow(container *widget.Container, newRow rowBuilder, positioner *stateicon.Positioner) *StatusWindow {
	return &StatusWindow{
		newRow:     newRow,
		positioner: positioner,
		container:  container,
		rows:       make(map[donburi.Entity]*statusRow),
	}
}

// Attach はウィンドウを親コンテナに追加して表示します。
func (sw *StatusWindow) Attach(parent *widget.Container) {
	sw.parent = parent
	sw.SetVisible(true)
}

// Widget はこのコンポーネントのルートウィジェットを返します。
func (sw *StatusWindow) Widget() *widget.Container {
	return sw.container
}

func (sw *StatusWindow) Visible() bool {
	return sw.visible
}

// SetVisible はウィンドウの表示を切り替えます。
// 非表示の間は行が配置されないため、アイコンも表示されません。
func (sw *StatusWindow) SetVisible(visible bool) {
	if sw.visible == visible || sw.parent == nil {
		return
	}
	if visible {
		sw.parent.AddChild(sw.container)
	} else {
		sw.parent.RemoveChild(sw.container)
	}
	sw.visible = visible
}

// RowCount は表示中の行数を返します。
func (sw *StatusWindow) RowCount() int {
	return len(sw.order)
}

// Order は行の並びをエンティティIDで返します。
func (sw *StatusWindow) Order() []donburi.Entity {
	return slices.Clone(sw.order)
}

// Sync は名簿の内容に合わせて行を作成・破棄・並び替えます。
// 破棄された行のステートアイコンも合わせて破棄します。
func (sw *StatusWindow) Sync(world donburi.World) {
	entries := entity.RosterEntries(world)
	next := make([]donburi.Entity, 0, len(entries))
	for _, e := range entries {
		next = append(next, e.Entity())
	}

	removed, changed := diffRoster(sw.order, next)
	for _, e := range removed {
		if row, ok := sw.rows[e]; ok {
			sw.container.RemoveChild(row.container)
			delete(sw.rows, e)
		}
		sw.positioner.Remove(e)
	}
	if !changed {
		return
	}

	sw.container.RemoveChildren()
	for _, e := range entries {
		row, ok := sw.rows[e.Entity()]
		if !ok {
			settings := component.SettingsComponent.Get(e)
			row = &statusRow{
				entity:    e.Entity(),
				container: sw.newRow(settings.Name, settings.Team),
			}
			sw.rows[row.entity] = row
		}
		sw.container.AddChild(row.container)
	}
	sw.order = next
}

// PlaceIcons はレイアウト確定後に呼び出し、各行の矩形からアイコンを配置します。
func (sw *StatusWindow) PlaceIcons() {
	sw.positioner.BeginLayout()
	if !sw.visible {
		return
	}
	for _, e := range sw.order {
		row := sw.rows[e]
		sw.positioner.Place(e, row.container.GetWidget().Rect)
	}
}

// diffRoster は現在の並びと次の並びを比べ、消えたエンティティと並びの変化有無を返します。
func diffRoster(current, next []donburi.Entity) (removed []donburi.Entity, changed bool) {
	for _, e := range current {
		if !slices.Contains(next, e) {
			removed = append(removed, e)
		}
	}
	return removed, !slices.Equal(current, next)
}
