package stateicon

import (
	"image"
	"log"
	"sync"
	"sync/atomic"

	"stateicon-ebiten/core"
)

// IconAtlas はアイコンセット画像を包み、インデックスからセル矩形を引けるようにします。
// 画像の読み込みは非同期で完了するため、描画側は毎フレーム IsReady でポーリングします。
type IconAtlas struct {
	cellWidth   int
	cellHeight  int
	cellsPerRow int

	mu    sync.RWMutex
	img   image.Image
	ready atomic.Bool
}

// NewIconAtlas は画像未設定のアトラスを作成します。
func NewIconAtlas(cellWidth, cellHeight, cellsPerRow int) *IconAtlas {
	if cellWidth <= 0 {
		cellWidth = core.IconCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = core.IconCellHeight
	}
	if cellsPerRow <= 0 {
		cellsPerRow = core.IconsPerRow
	}
	return &IconAtlas{
		cellWidth:   cellWidth,
		cellHeight:  cellHeight,
		cellsPerRow: cellsPerRow,
	}
}

// NewReadyIconAtlas は読み込み済みの画像からアトラスを作成します。
func NewReadyIconAtlas(img image.Image, cellWidth, cellHeight, cellsPerRow int) *IconAtlas {
	a := NewIconAtlas(cellWidth, cellHeight, cellsPerRow)
	a.SetImage(img)
	return a
}

// SetImage は画像を設定し、準備完了にします。nil の場合は未準備に戻します。
func (a *IconAtlas) SetImage(img image.Image) {
	a.mu.Lock()
	a.img = img
	a.mu.Unlock()
	a.ready.Store(img != nil)
}

// LoadAsync は load をゴルーチンで実行し、成功したら画像を設定します。
// 失敗した場合はログを出して未準備のままにします。
func (a *IconAtlas) LoadAsync(load func() (image.Image, error)) {
	go func() {
		img, err := load()
		if err != nil {
			log.Printf("アイコンセットの読み込みに失敗しました: %v", err)
			return
		}
		a.SetImage(img)
	}()
}

// IsReady は画像が利用可能かどうかを返します。
func (a *IconAtlas) IsReady() bool {
	return a.ready.Load()
}

func (a *IconAtlas) CellWidth() int  { return a.cellWidth }
func (a *IconAtlas) CellHeight() int { return a.cellHeight }

// Image は現在の画像を返します。未準備なら nil です。
func (a *IconAtlas) Image() image.Image {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.img
}

// CellRect はアイコンインデックスに対応する転送元矩形を返します。
// 負のインデックスや画像の範囲外を指す場合は false を返します。
func (a *IconAtlas) CellRect(iconIndex int) (image.Rectangle, bool) {
	if iconIndex < 0 {
		return image.Rectangle{}, false
	}
	col := iconIndex % a.cellsPerRow
	row := iconIndex / a.cellsPerRow

	img := a.Image()
	if img == nil {
		return image.Rectangle{}, false
	}
	b := img.Bounds()
	r := image.Rect(col*a.cellWidth, row*a.cellHeight, (col+1)*a.cellWidth, (row+1)*a.cellHeight).Add(b.Min)
	if !r.In(b) {
		return image.Rectangle{}, false
	}
	return r, true
}
