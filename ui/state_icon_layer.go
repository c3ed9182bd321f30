package ui

import (
	"stateicon-ebiten/ui/stateicon"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type cachedComposite struct {
	version int
	image   *ebiten.Image
}

// StateIconLayer は合成済みのアイコン列を画面に描画します。
// 合成画像が変わったときだけ ebiten.Image に変換します。
type StateIconLayer struct {
	positioner *stateicon.Positioner
	driver     *stateicon.Driver
	cache      map[donburi.Entity]*cachedComposite
}

// NewStateIconLayer は新しいStateIconLayerを作成します。
func NewStateIconLayer(positioner *stateicon.Positioner, driver *stateicon.Driver) *StateIconLayer {
	return &StateIconLayer{
		positioner: positioner,
		driver:     driver,
		cache:      make(map[donburi.Entity]*cachedComposite),
	}
}

// Update はフレーム毎に呼び出し、全インスタンスを1フレーム進めます。
func (l *StateIconLayer) Update() {
	l.driver.Tick()
}

// Dump はデバッグ用の表示状態の一覧を返します。
func (l *StateIconLayer) Dump(label func(inst *stateicon.RenderInstance) string) string {
	return l.driver.Dump(label)
}

// Draw は表示中のインスタンスをアンカー位置に描画します。
// アンカーのXは画像の中心、Yは上端です。
func (l *StateIconLayer) Draw(screen *ebiten.Image) {
	l.prune()
	for _, inst := range l.positioner.Instances() {
		img := l.imageFor(inst)
		if img == nil || !inst.Visible() {
			continue
		}
		ax, ay := inst.Anchor()
		w := img.Bounds().Dx()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ax-float64(w)/2, ay)
		screen.DrawImage(img, op)
	}
}

func (l *StateIconLayer) imageFor(inst *stateicon.RenderInstance) *ebiten.Image {
	e := inst.Entity()
	cached, ok := l.cache[e]
	if ok && cached.version == inst.Version() {
		return cached.image
	}
	if ok && cached.image != nil {
		cached.image.Deallocate()
	}
	c := &cachedComposite{version: inst.Version()}
	if comp := inst.Composite(); comp != nil {
		c.image = ebiten.NewImageFromImage(comp)
	}
	l.cache[e] = c
	return c.image
}

// prune は破棄されたインスタンスの画像を解放します。
func (l *StateIconLayer) prune() {
	for e, cached := range l.cache {
		if _, ok := l.positioner.Lookup(e); ok {
			continue
		}
		if cached.image != nil {
			cached.image.Deallocate()
		}
		delete(l.cache, e)
	}
}
