package entity

import (
	"log"

	"stateicon-ebiten/core"
	"stateicon-ebiten/ecs/component"

	"github.com/yohamta/donburi"
)

// InitializeBattleWorld は戦闘ワールドのECSエンティティを初期化します。
// 生成したバトラーのエンティティを名簿順で返します。
func InitializeBattleWorld(world donburi.World, gameData *core.GameData) []donburi.Entity {
	if gameData == nil {
		log.Println("ゲームデータがありません。バトラーは生成されません。")
		return nil
	}
	entities := make([]donburi.Entity, 0, len(gameData.Battlers))
	for _, b := range gameData.Battlers {
		entities = append(entities, CreateBattler(world, b).Entity())
	}
	log.Printf("%d体のバトラーを生成しました。", len(entities))
	return entities
}

// CreateBattler はバトラー1体分のエンティティを生成します。
// 生成直後はステート/バフを持たず、名簿に載った状態です。
func CreateBattler(world donburi.World, b core.BattlerData) *donburi.Entry {
	entry := world.Entry(world.Create(
		component.SettingsComponent,
		component.ActiveStatesComponent,
		component.BuffsComponent,
		component.RosterTag,
	))
	component.SettingsComponent.SetValue(entry, component.Settings{
		ID:        b.ID,
		Name:      b.Name,
		Team:      b.Team,
		DrawIndex: b.DrawIndex,
	})
	component.ActiveStatesComponent.SetValue(entry, component.ActiveStates{
		States: make([]component.StateInstance, 0),
	})
	component.BuffsComponent.SetValue(entry, component.Buffs{})
	return entry
}
