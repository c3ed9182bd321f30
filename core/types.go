package core

// --- Enums and Constants ---

type TeamID int
type AnchorMode string

const (
	Team1    TeamID = 0
	Team2    TeamID = 1
	TeamNone TeamID = -1
)

// アイコンセット画像のレイアウト。IconSet.png は 32x32 のセルが横16列で並んでいます。
const (
	IconCellWidth  = 32
	IconCellHeight = 32
	IconsPerRow    = 16
)

// バフ・デバフアイコンの開始インデックス。レベル毎に8スロット分並んでいます。
const (
	IconBuffStart   = 32
	IconDebuffStart = 48
	BuffSlotCount   = 8
	MaxBuffLevel    = 2
)

const (
	// AnchorCenter は行矩形の中心にアイコン列を配置します。
	AnchorCenter AnchorMode = "center"
	// AnchorStatus はステータスウィンドウ用に調整された右上基準の配置です。
	AnchorStatus AnchorMode = "status"
)

// --- Marker data ---

// DisplayEntry は、アイコン1つ分の表示データです。集約のたびに新しく生成されます。
type DisplayEntry struct {
	IconIndex      int
	RemainingTurns int
}

// StatusMarker は、エンティティに付与されているステート1つ分のデータです。
// 並び順はデータソース側の優先度順です。
type StatusMarker struct {
	StateID   string
	IconIndex int
	Turns     int
}

// BuffMarker は、能力値スロット1つ分のバフ/デバフ段階です。
type BuffMarker struct {
	Slot  int
	Level int
	Turns int
}

// BuffIconIndex はバフ段階とスロットからアイコンインデックスを求めます。
// 段階が0の場合は0（アイコンなし）を返します。
func BuffIconIndex(level, slot int) int {
	switch {
	case level > 0:
		return IconBuffStart + (level-1)*BuffSlotCount + slot
	case level < 0:
		return IconDebuffStart + (-level-1)*BuffSlotCount + slot
	default:
		return 0
	}
}

// StateDefinition は states.csv の1行に対応するステート定義です。
type StateDefinition struct {
	ID        string
	Name      string
	IconIndex int
	MinTurns  int
	MaxTurns  int
	Priority  int
}

// BattlerData は roster.csv の1行に対応するバトラーの初期構成です。
type BattlerData struct {
	ID        string
	Name      string
	Team      TeamID
	DrawIndex int
}

// GameData は起動時に読み込まれる静的データをまとめたものです。
type GameData struct {
	States   []StateDefinition
	Battlers []BattlerData
}

// MessageTemplate は messages.json の1エントリです。
type MessageTemplate struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
