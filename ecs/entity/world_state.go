package entity

import (
	"log"
	"sort"

	"stateicon-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// RosterEntries は名簿に載っているバトラーをチーム、描画順の順に返します。
func RosterEntries(world donburi.World) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0)
	query.NewQuery(filter.And(
		filter.Contains(component.RosterTag),
		filter.Contains(component.SettingsComponent),
	)).Each(world, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		a := component.SettingsComponent.Get(entries[i])
		b := component.SettingsComponent.Get(entries[j])
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.DrawIndex < b.DrawIndex
	})
	return entries
}

// FindBattler はIDでバトラーを探します。
func FindBattler(world donburi.World, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	query.NewQuery(filter.Contains(component.SettingsComponent)).Each(world, func(entry *donburi.Entry) {
		if found == nil && component.SettingsComponent.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}

// RemoveFromRoster はバトラーを名簿から外します。エンティティ自体は残ります。
func RemoveFromRoster(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(component.RosterTag) {
		return false
	}
	entry.RemoveComponent(component.RosterTag)
	log.Printf("%s が名簿から外れました。", component.SettingsComponent.Get(entry).Name)
	return true
}

// DestroyBattler はバトラーのエンティティをワールドから削除します。
func DestroyBattler(world donburi.World, entity donburi.Entity) bool {
	if !world.Valid(entity) {
		return false
	}
	world.Remove(entity)
	return true
}
