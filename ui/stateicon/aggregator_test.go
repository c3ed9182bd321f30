package stateicon

import (
	"testing"

	"stateicon-ebiten/core"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_StatesThenBuffs(t *testing.T) {
	ents := newTestEntities(t, 1)
	src := newFakeSource()
	src.statuses[ents[0]] = []core.StatusMarker{
		{StateID: "poison", IconIndex: 2, Turns: 3},
		{StateID: "hidden", IconIndex: 0, Turns: 5},
		{StateID: "sleep", IconIndex: 6, Turns: 0},
	}
	src.buffs[ents[0]] = []core.BuffMarker{
		{Slot: 2, Level: 1, Turns: 4},
		{Slot: 0, Level: -2, Turns: 1},
		{Slot: 5, Level: 0, Turns: 9},
	}

	got := NewAggregator(src).Aggregate(ents[0])

	assert.Equal(t, []core.DisplayEntry{
		{IconIndex: 2, RemainingTurns: 3},
		{IconIndex: 6, RemainingTurns: 0},
		{IconIndex: core.IconBuffStart + 2, RemainingTurns: 4},
		{IconIndex: core.IconDebuffStart + 8, RemainingTurns: 1},
	}, got)
}

func TestAggregate_MissingEntity(t *testing.T) {
	ents := newTestEntities(t, 1)
	assert.Empty(t, NewAggregator(newFakeSource()).Aggregate(ents[0]))
	assert.Empty(t, NewAggregator(nil).Aggregate(ents[0]))
}

func TestAggregate_NegativeTurnsClampToZero(t *testing.T) {
	ents := newTestEntities(t, 1)
	src := newFakeSource()
	src.statuses[ents[0]] = []core.StatusMarker{{IconIndex: 4, Turns: -2}}

	got := NewAggregator(src).Aggregate(ents[0])
	assert.Equal(t, []core.DisplayEntry{{IconIndex: 4, RemainingTurns: 0}}, got)
}

func TestAggregate_StableAcrossCalls(t *testing.T) {
	ents := newTestEntities(t, 1)
	src := newFakeSource()
	src.setIcons(ents[0], 7, 2)
	agg := NewAggregator(src)

	first := agg.Aggregate(ents[0])
	second := agg.Aggregate(ents[0])
	assert.True(t, sameEntries(first, second))
}

func TestBuffIconIndex(t *testing.T) {
	assert.Equal(t, 0, core.BuffIconIndex(0, 3))
	assert.Equal(t, 32, core.BuffIconIndex(1, 0))
	assert.Equal(t, 47, core.BuffIconIndex(2, 7))
	assert.Equal(t, 48, core.BuffIconIndex(-1, 0))
	assert.Equal(t, 58, core.BuffIconIndex(-2, 2))
}
