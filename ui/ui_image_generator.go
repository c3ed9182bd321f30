package ui

import (
	"image/color"
	"math"

	"stateicon-ebiten/data"

	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIImageGenerator はUIコンポーネントの画像生成ロジックをカプセル化します。
type UIImageGenerator struct {
	config *data.Config
}

// NewUIImageGenerator は新しいUIImageGeneratorのインスタンスを作成します。
func NewUIImageGenerator(config *data.Config) *UIImageGenerator {
	return &UIImageGenerator{
		config: config,
	}
}

// createWindowNineSlice はステータスウィンドウ用の枠付きパネルを生成します。
// グラデーション背景と立体的な枠線が特徴です。
func (g *UIImageGenerator) createWindowNineSlice(thickness float32) *image.NineSlice {
	start, end := windowGradientColors(g.config.UI.Colors.Panel)
	return g.createBeveledNineSlice(start, end, color.RGBA{R: 0, G: 191, B: 255, A: 255}, thickness)
}

// windowPanelAlpha はステータスウィンドウ背景の不透明度です。
const windowPanelAlpha = 230

// windowGradientColors はパネル色から半透明のグラデーション両端を返します。
// 非乗算のNRGBAで組み立てるため、アルファを下げてもRGBはアルファを超えません。
func windowGradientColors(panel color.Color) (start, end color.NRGBA) {
	if panel == nil {
		panel = color.Black
	}
	base := color.NRGBAModel.Convert(panel).(color.NRGBA)
	start = color.NRGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: windowPanelAlpha}
	end = color.NRGBA{R: base.R, G: base.G, B: base.B, A: windowPanelAlpha}
	return start, end
}

// createRowNineSlice はバトラー1行分の背景を生成します。枠の色はチーム色です。
func (g *UIImageGenerator) createRowNineSlice(teamColor color.Color, thickness float32) *image.NineSlice {
	return g.createBeveledNineSlice(
		color.RGBA{R: 10, G: 14, B: 28, A: 200},
		color.RGBA{R: 24, G: 32, B: 56, A: 200},
		teamColor,
		thickness,
	)
}

// createBeveledNineSlice は縦グラデーションにハイライトとシャドウの枠線を重ねます。
func (g *UIImageGenerator) createBeveledNineSlice(startColor, endColor, borderColor color.Color, thickness float32) *image.NineSlice {
	tileSize := 64
	borderInset := int(thickness)

	img := ebiten.NewImage(tileSize, tileSize)
	g.drawGradient(img, startColor, endColor)

	highlightColor, shadowColor := g.createHighlightAndShadowColors(borderColor)

	// 上辺と左辺にハイライト、下辺と右辺にシャドウ
	vector.StrokeLine(img, 0, 0, float32(tileSize), 0, thickness, highlightColor, false)
	vector.StrokeLine(img, 0, 0, 0, float32(tileSize), thickness, highlightColor, false)
	vector.StrokeLine(img, 0, float32(tileSize), float32(tileSize), float32(tileSize), thickness, shadowColor, false)
	vector.StrokeLine(img, float32(tileSize), 0, float32(tileSize), float32(tileSize), thickness, shadowColor, false)

	return image.NewNineSlice(img,
		[3]int{borderInset, tileSize - 2*borderInset, borderInset},
		[3]int{borderInset, tileSize - 2*borderInset, borderInset})
}

// drawGradient は、指定された画像に線形グラデーションを描画します。
func (g *UIImageGenerator) drawGradient(img *ebiten.Image, startColor, endColor color.Color) {
	size := img.Bounds().Size()
	sr, sg, sb, sa := startColor.RGBA()
	er, eg, eb, ea := endColor.RGBA()

	for y := 0; y < size.Y; y++ {
		ratio := float64(y) / float64(size.Y-1)
		c := color.RGBA64{
			R: uint16(lerp(float64(sr), float64(er), ratio)),
			G: uint16(lerp(float64(sg), float64(eg), ratio)),
			B: uint16(lerp(float64(sb), float64(eb), ratio)),
			A: uint16(lerp(float64(sa), float64(ea), ratio)),
		}
		for x := 0; x < size.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// createHighlightAndShadowColors は、ベースカラーから明るい色と暗い色を生成します。
func (g *UIImageGenerator) createHighlightAndShadowColors(baseColor color.Color) (highlight color.Color, shadow color.Color) {
	r, gVal, b, a := baseColor.RGBA()

	highlight = color.RGBA64{
		R: uint16(math.Min(0xffff, float64(r)*1.5)),
		G: uint16(math.Min(0xffff, float64(gVal)*1.5)),
		B: uint16(math.Min(0xffff, float64(b)*1.5)),
		A: uint16(a),
	}
	shadow = color.RGBA64{
		R: uint16(float64(r) * 0.5),
		G: uint16(float64(gVal) * 0.5),
		B: uint16(float64(b) * 0.5),
		A: uint16(a),
	}
	return highlight, shadow
}

// lerp は線形補間を行います。
func lerp(start, end, ratio float64) float64 {
	return start*(1-ratio) + end*ratio
}
