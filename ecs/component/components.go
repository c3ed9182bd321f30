package component

// ECSのCに相当するコンポーネント定義を集約します。
// ステート/バフの所有と更新はこのパッケージの型とECSシステムだけが行います。

import (
	"sort"

	"stateicon-ebiten/core"
)

// Settings はバトラーの不変的な設定を保持します。
type Settings struct {
	ID        string
	Name      string
	Team      core.TeamID
	DrawIndex int // ステータスウィンドウの並び順に使用されます。
}

// StateInstance はバトラーに付与中のステート1つ分です。
type StateInstance struct {
	StateID   string
	IconIndex int
	Turns     int
	Priority  int
	// Permanent なステートはターン経過で解除されません。
	Permanent bool
}

// ActiveStates は付与中のステートを優先度の高い順に保持します。
type ActiveStates struct {
	States []StateInstance
}

// Add はステートを付与します。既に付与済みならターン数だけ更新します。
func (a *ActiveStates) Add(def core.StateDefinition, turns int) {
	for i := range a.States {
		if a.States[i].StateID == def.ID {
			a.States[i].Turns = max(a.States[i].Turns, turns)
			return
		}
	}
	a.States = append(a.States, StateInstance{
		StateID:   def.ID,
		IconIndex: def.IconIndex,
		Turns:     turns,
		Priority:  def.Priority,
		Permanent: turns <= 0,
	})
	// 同じ優先度では付与順を保つ
	sort.SliceStable(a.States, func(i, j int) bool {
		return a.States[i].Priority > a.States[j].Priority
	})
}

// Remove はステートを解除します。
func (a *ActiveStates) Remove(stateID string) bool {
	for i := range a.States {
		if a.States[i].StateID == stateID {
			a.States = append(a.States[:i], a.States[i+1:]...)
			return true
		}
	}
	return false
}

// Has はステートが付与されているかを返します。
func (a *ActiveStates) Has(stateID string) bool {
	for _, s := range a.States {
		if s.StateID == stateID {
			return true
		}
	}
	return false
}

// Tick はターンを1つ進め、切れたステートのIDを返します。
func (a *ActiveStates) Tick() []string {
	var expired []string
	kept := a.States[:0]
	for _, s := range a.States {
		if !s.Permanent {
			s.Turns--
			if s.Turns <= 0 {
				expired = append(expired, s.StateID)
				continue
			}
		}
		kept = append(kept, s)
	}
	a.States = kept
	return expired
}

// Buffs は能力値スロット毎のバフ段階 (-2..2) と残りターンを保持します。
type Buffs struct {
	Levels [core.BuffSlotCount]int
	Turns  [core.BuffSlotCount]int
}

// AddBuff は段階を1つ上げ、ターン数を設定します。
func (b *Buffs) AddBuff(slot, turns int) {
	b.shift(slot, 1, turns)
}

// AddDebuff は段階を1つ下げ、ターン数を設定します。
func (b *Buffs) AddDebuff(slot, turns int) {
	b.shift(slot, -1, turns)
}

func (b *Buffs) shift(slot, delta, turns int) {
	if slot < 0 || slot >= core.BuffSlotCount {
		return
	}
	level := b.Levels[slot] + delta
	level = max(-core.MaxBuffLevel, min(core.MaxBuffLevel, level))
	b.Levels[slot] = level
	if level == 0 {
		b.Turns[slot] = 0
		return
	}
	b.Turns[slot] = max(b.Turns[slot], turns)
}

// Tick はターンを1つ進め、切れた段階を0に戻します。
func (b *Buffs) Tick() {
	for i := range b.Levels {
		if b.Levels[i] == 0 {
			continue
		}
		b.Turns[i]--
		if b.Turns[i] <= 0 {
			b.Levels[i] = 0
			b.Turns[i] = 0
		}
	}
}
