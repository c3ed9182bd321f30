package ui

import (
	"image/color"

	"stateicon-ebiten/core"
	"stateicon-ebiten/data"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// UIFactory はUIコンポーネントの生成とスタイリングを一元的に管理します。
type UIFactory struct {
	Config         *data.Config
	Font           text.Face
	MessageManager *data.MessageManager
	imageGenerator *UIImageGenerator
}

// NewUIFactory は新しいUIFactoryのインスタンスを作成します。
func NewUIFactory(config *data.Config, font text.Face, messageManager *data.MessageManager) *UIFactory {
	return &UIFactory{
		Config:         config,
		Font:           font,
		MessageManager: messageManager,
		imageGenerator: NewUIImageGenerator(config),
	}
}

// Message はメッセージIDを整形します。MessageManager がない場合はIDをそのまま返します。
func (f *UIFactory) Message(id string, params map[string]any) string {
	if f.MessageManager == nil {
		return id
	}
	return f.MessageManager.FormatMessage(id, params)
}

// TeamColor はチームの表示色を返します。
func (f *UIFactory) TeamColor(team core.TeamID) color.Color {
	if team == core.Team2 {
		return f.Config.UI.Colors.Team2
	}
	return f.Config.UI.Colors.Team1
}

// NewLabel は通常フォントのテキストを生成します。
func (f *UIFactory) NewLabel(label string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, f.Font, c),
	)
}

// NewStatusWindowContainer はステータスウィンドウの外枠を生成します。
func (f *UIFactory) NewStatusWindowContainer() *widget.Container {
	sw := f.Config.UI.StatusWindow
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(f.imageGenerator.createWindowNineSlice(3)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(sw.Padding)),
			widget.RowLayoutOpts.Spacing(sw.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sw.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
}

// NewStatusRow はバトラー1行分のコンテナを生成します。
// 行の矩形がステートアイコンの配置基準になります。
func (f *UIFactory) NewStatusRow(name string, team core.TeamID) *widget.Container {
	sw := f.Config.UI.StatusWindow
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(f.imageGenerator.createRowNineSlice(f.TeamColor(team), 2)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sw.Width-2*sw.Padding, sw.RowHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	row.AddChild(f.NewLabel(name, f.TeamColor(team)))
	return row
}
