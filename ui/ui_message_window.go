package ui

import (
	"github.com/ebitenui/ebitenui/widget"
)

// MessageWindow は画面下部に直近のイベントメッセージを表示するUIコンポーネントです。
type MessageWindow struct {
	container *widget.Container
	label     *widget.Text
	uiFactory *UIFactory
}

// NewMessageWindow は新しいMessageWindowのインスタンスを作成します。
func NewMessageWindow(uiFactory *UIFactory) *MessageWindow {
	c := uiFactory.Config.UI
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	label := uiFactory.NewLabel("", c.Colors.White)
	container.AddChild(label)
	container.AddChild(uiFactory.NewLabel(uiFactory.Message("battle_help", nil), c.Colors.Warning))

	return &MessageWindow{
		container: container,
		label:     label,
		uiFactory: uiFactory,
	}
}

// Widget はこのコンポーネントのルートウィジェットを返します。
func (m *MessageWindow) Widget() *widget.Container {
	return m.container
}

// SetMessage は表示するメッセージを差し替えます。
func (m *MessageWindow) SetMessage(message string) {
	m.label.Label = message
}

// Message は表示中のメッセージを返します。
func (m *MessageWindow) Message() string {
	return m.label.Label
}
