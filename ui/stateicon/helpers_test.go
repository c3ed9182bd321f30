package stateicon

import (
	"image"
	"image/color"
	"testing"

	"stateicon-ebiten/core"

	"github.com/yohamta/donburi"
)

var testTag = donburi.NewComponentType[struct{}]()

// fakeSource はテスト用の MarkerSource です。
type fakeSource struct {
	statuses map[donburi.Entity][]core.StatusMarker
	buffs    map[donburi.Entity][]core.BuffMarker
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		statuses: make(map[donburi.Entity][]core.StatusMarker),
		buffs:    make(map[donburi.Entity][]core.BuffMarker),
	}
}

func (f *fakeSource) ActiveStatuses(e donburi.Entity) ([]core.StatusMarker, bool) {
	s, ok := f.statuses[e]
	return s, ok
}

func (f *fakeSource) ActiveBuffs(e donburi.Entity) []core.BuffMarker {
	return f.buffs[e]
}

// setIcons はアイコン 1..n をターン数 turns で登録します。
func (f *fakeSource) setIcons(e donburi.Entity, n, turns int) {
	markers := make([]core.StatusMarker, 0, n)
	for i := 1; i <= n; i++ {
		markers = append(markers, core.StatusMarker{IconIndex: i, Turns: turns})
	}
	f.statuses[e] = markers
}

func newTestEntities(t *testing.T, n int) []donburi.Entity {
	t.Helper()
	w := donburi.NewWorld()
	out := make([]donburi.Entity, n)
	for i := range out {
		out[i] = w.Create(testTag)
	}
	return out
}

// cellColor はテスト用アトラスのセル毎の単色です。
func cellColor(index int) color.RGBA {
	return color.RGBA{R: uint8(index * 3), G: 100, B: 200, A: 255}
}

// newTestAtlasImage は 16列 x rows 行の単色セルで構成されたアイコンセットを作ります。
func newTestAtlasImage(rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, core.IconsPerRow*core.IconCellWidth, rows*core.IconCellHeight))
	for idx := 0; idx < core.IconsPerRow*rows; idx++ {
		col, row := idx%core.IconsPerRow, idx/core.IconsPerRow
		c := cellColor(idx)
		for y := row * core.IconCellHeight; y < (row+1)*core.IconCellHeight; y++ {
			for x := col * core.IconCellWidth; x < (col+1)*core.IconCellWidth; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func newTestAtlas() *IconAtlas {
	return NewReadyIconAtlas(newTestAtlasImage(4), core.IconCellWidth, core.IconCellHeight, core.IconsPerRow)
}

// entriesN はアイコン 1..n のエントリ列を作ります。
func entriesN(n int) []core.DisplayEntry {
	out := make([]core.DisplayEntry, n)
	for i := range out {
		out[i] = core.DisplayEntry{IconIndex: i + 1}
	}
	return out
}
