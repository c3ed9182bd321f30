package ui

import (
	"stateicon-ebiten/data"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlaceholderScene はタイトルや結果など、メッセージを表示してクリックを待つだけの汎用シーンです
type PlaceholderScene struct {
	resources *data.SharedResources
	onClick   func()
	ui        *ebitenui.UI
}

// NewPlaceholderScene は新しいプレースホルダーシーンを作成します
func NewPlaceholderScene(res *data.SharedResources, message, sub string, onClick func()) *PlaceholderScene {
	p := &PlaceholderScene{
		resources: res,
		onClick:   onClick,
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	colors := res.Config.UI.Colors
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(message, res.Font, colors.White),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(sub, res.Font, colors.Team1),
	))

	p.ui = &ebitenui.UI{Container: rootContainer}
	return p
}

func (p *PlaceholderScene) Update() error {
	p.ui.Update()
	if p.onClick != nil && (inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		p.onClick()
	}
	return nil
}

func (p *PlaceholderScene) Draw(screen *ebiten.Image) {
	screen.Fill(p.resources.Config.UI.Colors.Background)
	p.ui.Draw(screen)
}

func (p *PlaceholderScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.resources.Config.UI.Screen.Width, p.resources.Config.UI.Screen.Height
}
