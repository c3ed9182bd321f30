package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"

	"stateicon-ebiten/core"

	"gopkg.in/yaml.v3"
)

// Config は、ゲーム全体のコンフィグレーションを保持します。
// game_settings.json (または .yaml) から直接デシリアライズされる部分と、
// コード内で後から設定される部分（AssetPaths）で構成されます。
type Config struct {
	// UI設定はUIConfig構造体にマッピングされます。
	UI   UIConfig   `json:"UI" yaml:"UI"`
	Demo DemoConfig `json:"Demo" yaml:"Demo"`

	// --- Non-file fields ---
	AssetPaths AssetPaths `json:"-" yaml:"-"`
}

// AssetPaths は各種アセットへのパスを保持します。
type AssetPaths struct {
	GameSettings string
	Messages     string
	StatesCSV    string
	RosterCSV    string
	IconSet      string
	Font         string
}

// DemoConfig はデモ用のターン進行を制御します。
type DemoConfig struct {
	RandomSeed int64 `json:"RandomSeed" yaml:"RandomSeed"`
	// TurnFrames フレーム毎に1ターン進みます。
	TurnFrames     int     `json:"TurnFrames" yaml:"TurnFrames"`
	ApplyChance    float64 `json:"ApplyChance" yaml:"ApplyChance"`
	InitialMarkers int     `json:"InitialMarkers" yaml:"InitialMarkers"`
}

// UIConfig は設定ファイルの "UI" セクションとマッピングされます。
type UIConfig struct {
	Screen struct {
		Width  int `json:"Width" yaml:"Width"`
		Height int `json:"Height" yaml:"Height"`
	} `json:"Screen" yaml:"Screen"`
	// FontSize はUIラベルのフォントサイズです。
	FontSize     int `json:"FontSize" yaml:"FontSize"`
	StatusWindow struct {
		Width     int `json:"Width" yaml:"Width"`
		RowHeight int `json:"RowHeight" yaml:"RowHeight"`
		Padding   int `json:"Padding" yaml:"Padding"`
		Spacing   int `json:"Spacing" yaml:"Spacing"`
	} `json:"StatusWindow" yaml:"StatusWindow"`
	StateIcons StateIconsConfig `json:"StateIcons" yaml:"StateIcons"`

	// Colors は16進数文字列で記述され、カスタムのアンマーシャラでパースされます。
	Colors ParsedColors `json:"Colors" yaml:"Colors"`
}

// StateIconsConfig はステートアイコン表示の設定です。
type StateIconsConfig struct {
	// MaxIcons は1ページに並べるアイコン数です (1..10)。
	MaxIcons int `json:"MaxIcons" yaml:"MaxIcons"`
	// FrameWait は1ページの表示フレーム数です (10..120)。
	FrameWait int `json:"FrameWait" yaml:"FrameWait"`
	// OffsetX, OffsetY が0の場合は調整済みの既定値が使われます。
	OffsetX           int             `json:"OffsetX" yaml:"OffsetX"`
	OffsetY           int             `json:"OffsetY" yaml:"OffsetY"`
	AnchorMode        core.AnchorMode `json:"AnchorMode" yaml:"AnchorMode"`
	LineHeight        int             `json:"LineHeight" yaml:"LineHeight"`
	WarningTurns      int             `json:"WarningTurns" yaml:"WarningTurns"`
	AdvanceWhenHidden bool            `json:"AdvanceWhenHidden" yaml:"AdvanceWhenHidden"`
}

// 設定値の許容範囲
const (
	MinMaxIcons  = 1
	MaxMaxIcons  = 10
	MinFrameWait = 10
	MaxFrameWait = 120
	MaxOffsetX   = 64
	MaxOffsetY   = 32
)

// ParsedColors はパース済みの色情報を保持します。
type ParsedColors struct {
	White      color.Color
	Black      color.Color
	Background color.Color
	Panel      color.Color
	Team1      color.Color
	Team2      color.Color
	Warning    color.Color
	Outline    color.Color
}

// UnmarshalJSON は "Colors" オブジェクト（キーが色名、値が16進数文字列）をパースします。
// 指定のないキーは現在の値のまま残ります。
func (p *ParsedColors) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("色データのJSONアンマーシャルに失敗しました: %w", err)
	}
	p.apply(raw)
	return nil
}

// UnmarshalYAML は YAML 版の "Colors" をパースします。
func (p *ParsedColors) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("色データのYAMLデコードに失敗しました: %w", err)
	}
	p.apply(raw)
	return nil
}

func (p *ParsedColors) apply(raw map[string]string) {
	fields := map[string]*color.Color{
		"White":      &p.White,
		"Black":      &p.Black,
		"Background": &p.Background,
		"Panel":      &p.Panel,
		"Team1":      &p.Team1,
		"Team2":      &p.Team2,
		"Warning":    &p.Warning,
		"Outline":    &p.Outline,
	}
	for name, hex := range raw {
		dst, ok := fields[name]
		if !ok {
			log.Printf("未知の色名 '%s' は無視されます。", name)
			continue
		}
		*dst = parseHexColor(hex)
	}
}

// parseHexColor は16進数文字列からcolor.Colorをパースします。
// 先頭の '#' は省略可能です。
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	// 期待する長さ(6)でなければデフォルト色を返す
	if len(s) != 6 {
		log.Printf("無効な16進数カラーコードです: %s。デフォルト色を使用します。", s)
		return color.White
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		log.Printf("16進数カラーコード '%s' のパースに失敗しました: %v", s, err)
		return color.White
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
