package system

import (
	"log"
	"math/rand"

	"stateicon-ebiten/core"
	"stateicon-ebiten/ecs/component"
	"stateicon-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// StatusTurnSystem はデモ用にターンを進め、ステートとバフをランダムに付け外しします。
type StatusTurnSystem struct {
	world       donburi.World
	states      []core.StateDefinition
	rand        *rand.Rand
	turnFrames  int
	frame       int
	turn        int
	applyChance float64
}

// NewStatusTurnSystem は新しい StatusTurnSystem を生成します。
// turnFrames フレーム毎に1ターン進みます。
func NewStatusTurnSystem(world donburi.World, states []core.StateDefinition, r *rand.Rand, turnFrames int, applyChance float64) *StatusTurnSystem {
	if turnFrames < 1 {
		turnFrames = 1
	}
	return &StatusTurnSystem{
		world:       world,
		states:      states,
		rand:        r,
		turnFrames:  turnFrames,
		applyChance: applyChance,
	}
}

// Turn は経過ターン数を返します。
func (s *StatusTurnSystem) Turn() int {
	return s.turn
}

// Update は1フレーム分進め、ターンが進んだ場合は true を返します。
func (s *StatusTurnSystem) Update() bool {
	s.frame++
	if s.frame < s.turnFrames {
		return false
	}
	s.frame = 0
	s.AdvanceTurn()
	return true
}

// AdvanceTurn は名簿上の全バトラーのターンを1つ進めます。
func (s *StatusTurnSystem) AdvanceTurn() {
	s.turn++
	for _, entry := range entity.RosterEntries(s.world) {
		settings := component.SettingsComponent.Get(entry)
		expired := component.ActiveStatesComponent.Get(entry).Tick()
		for _, id := range expired {
			log.Printf("%s の %s が解除されました。", settings.Name, id)
		}
		component.BuffsComponent.Get(entry).Tick()

		if s.rand != nil && s.rand.Float64() < s.applyChance {
			s.applyRandom(entry)
		}
	}
}

func (s *StatusTurnSystem) applyRandom(entry *donburi.Entry) {
	if s.rand.Intn(2) == 0 && len(s.states) > 0 {
		def := s.states[s.rand.Intn(len(s.states))]
		ApplyState(entry, def, RollTurns(s.rand, def))
		return
	}
	slot := s.rand.Intn(core.BuffSlotCount)
	turns := 2 + s.rand.Intn(4)
	if s.rand.Intn(2) == 0 {
		ApplyBuff(entry, slot, turns)
	} else {
		ApplyDebuff(entry, slot, turns)
	}
}

// SeedRandomMarkers は全バトラーに初期のステート/バフを count 回ずつ付与します。
func (s *StatusTurnSystem) SeedRandomMarkers(count int) {
	if s.rand == nil {
		return
	}
	for _, entry := range entity.RosterEntries(s.world) {
		for i := 0; i < count; i++ {
			s.applyRandom(entry)
		}
	}
}

// RollTurns はステート定義の範囲からターン数を決めます。
// MaxTurns が0のステートは解除されません。
func RollTurns(r *rand.Rand, def core.StateDefinition) int {
	if def.MaxTurns <= 0 {
		return 0
	}
	lo := max(1, def.MinTurns)
	hi := max(lo, def.MaxTurns)
	if r == nil {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// ApplyState はステートを付与します。
func ApplyState(entry *donburi.Entry, def core.StateDefinition, turns int) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(component.ActiveStatesComponent) {
		return false
	}
	component.ActiveStatesComponent.Get(entry).Add(def, turns)
	return true
}

// RemoveState はステートを解除します。
func RemoveState(entry *donburi.Entry, stateID string) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(component.ActiveStatesComponent) {
		return false
	}
	return component.ActiveStatesComponent.Get(entry).Remove(stateID)
}

// ApplyBuff は能力値スロットの段階を1つ上げます。
func ApplyBuff(entry *donburi.Entry, slot, turns int) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(component.BuffsComponent) {
		return false
	}
	component.BuffsComponent.Get(entry).AddBuff(slot, turns)
	return true
}

// ApplyDebuff は能力値スロットの段階を1つ下げます。
func ApplyDebuff(entry *donburi.Entry, slot, turns int) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(component.BuffsComponent) {
		return false
	}
	component.BuffsComponent.Get(entry).AddDebuff(slot, turns)
	return true
}
