package stateicon

import (
	"stateicon-ebiten/core"

	"github.com/yohamta/donburi"
)

// Aggregator はエンティティのステートとバフを表示用エントリの列にまとめます。
type Aggregator struct {
	source core.MarkerSource
}

func NewAggregator(source core.MarkerSource) *Aggregator {
	return &Aggregator{source: source}
}

// Aggregate はステート（優先度順）、続いてバフ/デバフ（スロット順）の順でエントリを返します。
// アイコンインデックスが0以下のものは表示対象外です。
// エンティティが存在しない場合は空のスライスを返します。
func (a *Aggregator) Aggregate(entity donburi.Entity) []core.DisplayEntry {
	if a.source == nil {
		return nil
	}
	statuses, ok := a.source.ActiveStatuses(entity)
	if !ok {
		return nil
	}
	buffs := a.source.ActiveBuffs(entity)

	entries := make([]core.DisplayEntry, 0, len(statuses)+len(buffs))
	for _, s := range statuses {
		if s.IconIndex <= 0 {
			continue
		}
		entries = append(entries, core.DisplayEntry{IconIndex: s.IconIndex, RemainingTurns: max(s.Turns, 0)})
	}
	for _, b := range buffs {
		if b.Level == 0 {
			continue
		}
		icon := core.BuffIconIndex(b.Level, b.Slot)
		if icon <= 0 {
			continue
		}
		entries = append(entries, core.DisplayEntry{IconIndex: icon, RemainingTurns: max(b.Turns, 0)})
	}
	return entries
}

// sameEntries は2つのエントリ列が順序も含めて一致するかを返します。
func sameEntries(a, b []core.DisplayEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
