package component

import (
	"github.com/yohamta/donburi"
)

// --- Componentの型定義 ---
// 各コンポーネントにユニークな型情報を持たせます。
var (
	SettingsComponent = donburi.NewComponentType[Settings]()

	// --- Status Components ---
	ActiveStatesComponent = donburi.NewComponentType[ActiveStates]()
	BuffsComponent        = donburi.NewComponentType[Buffs]()

	// RosterTag は現在ステータスウィンドウに並ぶバトラーを示すタグです。
	// 戦闘不能などで隊列から外れるとこのタグが外れます。
	RosterTag = donburi.NewComponentType[struct{}]()
)
