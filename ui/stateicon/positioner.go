package stateicon

import (
	"image"
	"math"

	"stateicon-ebiten/core"

	"github.com/yohamta/donburi"
)

// ステータスウィンドウ配置の較正値。オフセット設定が0の場合はこれらを使います。
const (
	DefaultOffsetX    = -28
	DefaultOffsetY    = -4
	statusCalibration = 22
)

// PositionConfig はアンカー計算の設定です。
type PositionConfig struct {
	Mode       core.AnchorMode
	OffsetX    int
	OffsetY    int
	LineHeight int
	PageSize   int
	CellWidth  int
	CellHeight int
}

// ResolveOffsets は「0は較正済みの既定値」の規則を適用したオフセットを返します。
func ResolveOffsets(offsetX, offsetY int) (int, int) {
	if offsetX == 0 {
		offsetX = DefaultOffsetX
	}
	if offsetY == 0 {
		offsetY = DefaultOffsetY
	}
	return offsetX, offsetY
}

// AnchorFor は行の矩形からアイコン列のアンカー（水平中心, 上端）を求めます。
func AnchorFor(rect image.Rectangle, cfg PositionConfig) (float64, float64) {
	switch cfg.Mode {
	case core.AnchorStatus:
		offX, offY := ResolveOffsets(cfg.OffsetX, cfg.OffsetY)
		x := math.Floor(float64(rect.Max.X) - float64(cfg.CellWidth)*(float64(cfg.PageSize)/2) + float64(offX) + statusCalibration)
		y := math.Floor(float64(rect.Min.Y) + float64(cfg.LineHeight)*0.6 + float64(offY))
		return x, y
	default:
		x := float64(rect.Min.X) + float64(rect.Dx())/2 + float64(cfg.OffsetX)
		y := float64(rect.Min.Y) + float64(rect.Dy())/2 - float64(cfg.CellHeight)/2 + float64(cfg.OffsetY)
		return x, y
	}
}

// Positioner はエンティティIDごとに RenderInstance を1つだけ保持し、再描画のたびに配置し直します。
// リストの並び替えに耐えるよう、インデックスではなくエンティティIDで引きます。
type Positioner struct {
	cfg          PositionConfig
	pageDuration int

	instances map[donburi.Entity]*RenderInstance
	order     []donburi.Entity
}

func NewPositioner(cfg PositionConfig, pageDurationFrames int) *Positioner {
	if cfg.PageSize < 1 {
		cfg.PageSize = 1
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = core.IconCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = core.IconCellHeight
	}
	return &Positioner{
		cfg:          cfg,
		pageDuration: pageDurationFrames,
		instances:    make(map[donburi.Entity]*RenderInstance),
	}
}

// BeginLayout は再描画の開始時に呼び出し、全インスタンスを一旦非表示にします。
// この後 Place されたものだけが表示されます。
func (p *Positioner) BeginLayout() {
	for _, inst := range p.instances {
		inst.hide()
	}
}

// Place はエンティティの行矩形からアンカーを計算して設定します。
// インスタンスが未作成の場合はここで作成します。
func (p *Positioner) Place(entity donburi.Entity, rect image.Rectangle) *RenderInstance {
	inst, ok := p.instances[entity]
	if !ok {
		inst = NewRenderInstance(entity, p.cfg.PageSize, p.pageDuration)
		p.instances[entity] = inst
		p.order = append(p.order, entity)
	}
	x, y := AnchorFor(rect, p.cfg)
	inst.place(x, y)
	return inst
}

// Lookup はエンティティのインスタンスを返します。
func (p *Positioner) Lookup(entity donburi.Entity) (*RenderInstance, bool) {
	inst, ok := p.instances[entity]
	return inst, ok
}

// Remove は所有する行が破棄されたときにインスタンスを破棄します。
func (p *Positioner) Remove(entity donburi.Entity) {
	if _, ok := p.instances[entity]; !ok {
		return
	}
	delete(p.instances, entity)
	for i, e := range p.order {
		if e == entity {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Instances は生存中のインスタンスを作成順で返します。
func (p *Positioner) Instances() []*RenderInstance {
	out := make([]*RenderInstance, 0, len(p.order))
	for _, e := range p.order {
		out = append(out, p.instances[e])
	}
	return out
}

func (p *Positioner) Len() int {
	return len(p.instances)
}
