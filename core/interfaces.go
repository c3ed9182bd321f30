package core

import (
	"github.com/yohamta/donburi"
)

// MarkerSource はステート/バフ情報の読み取り専用の窓口です。
// ゲーム状態の所有と更新はECS側が担い、アイコン表示側は読むだけです。
type MarkerSource interface {
	// ActiveStatuses はエンティティのステート一覧を優先度順に返します。
	// エンティティが存在しない場合は false を返します。
	ActiveStatuses(entity donburi.Entity) ([]StatusMarker, bool)
	// ActiveBuffs は段階が0以外のバフ/デバフをスロット順に返します。
	ActiveBuffs(entity donburi.Entity) []BuffMarker
}
