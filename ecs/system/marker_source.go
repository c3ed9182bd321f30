package system

import (
	"stateicon-ebiten/core"
	"stateicon-ebiten/ecs/component"

	"github.com/yohamta/donburi"
)

// MarkerSourceImpl はECSワールドを core.MarkerSource として公開します。
type MarkerSourceImpl struct {
	world donburi.World
}

// NewMarkerSource は新しい MarkerSourceImpl を生成します。
func NewMarkerSource(world donburi.World) *MarkerSourceImpl {
	return &MarkerSourceImpl{world: world}
}

var _ core.MarkerSource = (*MarkerSourceImpl)(nil)

// ActiveStatuses は優先度順のステート一覧を返します。
func (m *MarkerSourceImpl) ActiveStatuses(entity donburi.Entity) ([]core.StatusMarker, bool) {
	if m.world == nil || !m.world.Valid(entity) {
		return nil, false
	}
	entry := m.world.Entry(entity)
	if !entry.HasComponent(component.ActiveStatesComponent) {
		return nil, true
	}
	states := component.ActiveStatesComponent.Get(entry).States
	markers := make([]core.StatusMarker, 0, len(states))
	for _, s := range states {
		markers = append(markers, core.StatusMarker{
			StateID:   s.StateID,
			IconIndex: s.IconIndex,
			Turns:     s.Turns,
		})
	}
	return markers, true
}

// ActiveBuffs は段階が0以外のスロットをスロット順に返します。
func (m *MarkerSourceImpl) ActiveBuffs(entity donburi.Entity) []core.BuffMarker {
	if m.world == nil || !m.world.Valid(entity) {
		return nil
	}
	entry := m.world.Entry(entity)
	if !entry.HasComponent(component.BuffsComponent) {
		return nil
	}
	buffs := component.BuffsComponent.Get(entry)
	var markers []core.BuffMarker
	for slot, level := range buffs.Levels {
		if level == 0 {
			continue
		}
		markers = append(markers, core.BuffMarker{
			Slot:  slot,
			Level: level,
			Turns: buffs.Turns[slot],
		})
	}
	return markers
}
