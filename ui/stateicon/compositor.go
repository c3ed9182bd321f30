package stateicon

import (
	"image"
	"image/color"
	"strconv"

	"stateicon-ebiten/core"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CompositorStyle はターン数表示の色と書体を指定します。
type CompositorStyle struct {
	Face         font.Face
	NormalColor  color.Color
	WarningColor color.Color
	OutlineColor color.Color
	// WarningTurns 以下の残りターンは警告色で描画します。
	WarningTurns int
}

// DefaultCompositorStyle は白文字・黄色警告・黒縁取りのスタイルです。
func DefaultCompositorStyle() CompositorStyle {
	return CompositorStyle{
		Face:         basicfont.Face7x13,
		NormalColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		WarningColor: color.RGBA{R: 255, G: 200, B: 40, A: 255},
		OutlineColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		WarningTurns: 3,
	}
}

// outlineOffsets は縁取りパスで文字をずらす量です。
var outlineOffsets = [...]image.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// Compositor は1ページ分のアイコンとターン数を1枚の画像に合成します。
type Compositor struct {
	atlas *IconAtlas
	style CompositorStyle
}

func NewCompositor(atlas *IconAtlas, style CompositorStyle) *Compositor {
	if style.Face == nil {
		style.Face = basicfont.Face7x13
	}
	if style.NormalColor == nil {
		style.NormalColor = color.White
	}
	if style.WarningColor == nil {
		style.WarningColor = style.NormalColor
	}
	if style.OutlineColor == nil {
		style.OutlineColor = color.Black
	}
	return &Compositor{atlas: atlas, style: style}
}

// Compose はページのエントリを左から順に並べた画像を返します。
// 幅は エントリ数 × セル幅、高さはセル高さです。空のページでは大きさ0の画像を返します。
// アトラスが未準備の場合は false を返し、呼び出し側は前回の画像を維持します。
func (c *Compositor) Compose(page []core.DisplayEntry) (*image.RGBA, bool) {
	if len(page) == 0 {
		return image.NewRGBA(image.Rectangle{}), true
	}
	if c.atlas == nil || !c.atlas.IsReady() {
		return nil, false
	}
	src := c.atlas.Image()
	if src == nil {
		return nil, false
	}

	cw, ch := c.atlas.CellWidth(), c.atlas.CellHeight()
	dst := image.NewRGBA(image.Rect(0, 0, len(page)*cw, ch))
	for i, e := range page {
		sr, ok := c.atlas.CellRect(e.IconIndex)
		if !ok {
			// 範囲外のアイコンは描かずにセルを空けておく
			continue
		}
		dx := i * cw
		draw.Copy(dst, image.Pt(dx, 0), src, sr, draw.Src, nil)
		if e.RemainingTurns > 0 {
			cell := dst.SubImage(image.Rect(dx, 0, dx+cw, ch)).(*image.RGBA)
			c.drawTurns(cell, dx, cw, ch, e.RemainingTurns)
		}
	}
	return dst, true
}

// MaxTurnLabel を超えるターン数は "99+" のように表示します。
const MaxTurnLabel = 99

func turnLabel(turns int) string {
	if turns > MaxTurnLabel {
		return strconv.Itoa(MaxTurnLabel) + "+"
	}
	return strconv.Itoa(turns)
}

// drawTurns はセル右下にターン数を描画します。先に縁取り色でずらして描き、その上に本体色を重ねます。
// dst はセルの範囲に切り出した画像で、はみ出した部分は描かれません。
func (c *Compositor) drawTurns(dst draw.Image, cellX, cellW, cellH, turns int) {
	label := turnLabel(turns)
	face := c.style.Face
	width := font.MeasureString(face, label).Ceil()
	descent := face.Metrics().Descent.Ceil()

	x := max(cellX, cellX+cellW-width-1)
	y := cellH - descent - 1

	outline := &font.Drawer{Dst: dst, Src: image.NewUniform(c.style.OutlineColor), Face: face}
	for _, off := range outlineOffsets {
		outline.Dot = fixed.P(x+off.X, y+off.Y)
		outline.DrawString(label)
	}

	fill := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.turnColor(turns)),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	fill.DrawString(label)
}

func (c *Compositor) turnColor(turns int) color.Color {
	if turns <= c.style.WarningTurns {
		return c.style.WarningColor
	}
	return c.style.NormalColor
}
