package ui

import (
	"log"

	"stateicon-ebiten/data"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/noppikinatta/bamenn"
)

// Sceneは、bamennで管理される全てのシーンが満たすべきインターフェースです。
// ebiten.Gameを埋め込むことで、Update/Draw/Layoutメソッドを持つことが保証されます。
type Scene interface {
	ebiten.Game
}

// SceneManagerはbamennのシーケンスと共有リソースを管理します
type SceneManager struct {
	Sequence  *bamenn.Sequence
	resources *data.SharedResources
}

// NewSceneManagerは新しいシーンマネージャを作成し、タイトルシーンから開始します
func NewSceneManager(res *data.SharedResources) *SceneManager {
	m := &SceneManager{
		resources: res,
	}
	m.Sequence = bamenn.NewSequence(m.newTitleScene())
	return m
}

// 各シーンを生成するファクトリ関数です
// これにより、循環参照することなく、各シーンからマネージャ経由で他のシーンに遷移できます

func (m *SceneManager) newTitleScene() Scene {
	msg := m.resources.Messages
	return NewPlaceholderScene(m.resources,
		msg.FormatMessage("title", nil),
		msg.FormatMessage("title_prompt", nil),
		m.GoToBattleScene,
	)
}

func (m *SceneManager) newResultScene(message string) Scene {
	return NewPlaceholderScene(m.resources,
		message,
		m.resources.Messages.FormatMessage("result_prompt", nil),
		m.GoToTitleScene,
	)
}

// GoTo... メソッド群は、各シーンから呼び出され、指定されたシーンに遷移させます

func (m *SceneManager) GoToTitleScene() {
	m.Sequence.Switch(m.newTitleScene())
}

func (m *SceneManager) GoToBattleScene() {
	log.Println("バトルシーンを開始します。")
	m.Sequence.Switch(NewBattleScene(m.resources, m))
}

func (m *SceneManager) GoToResultScene(message string) {
	m.Sequence.Switch(m.newResultScene(message))
}
