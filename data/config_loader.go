package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"stateicon-ebiten/core"

	"gopkg.in/yaml.v3"
)

// DefaultAssetPaths はアセットへの既定のパスを返します。
func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		GameSettings: "assets/configs/game_settings.json",
		Messages:     "assets/texts/messages.json",
		StatesCSV:    "assets/databases/states.csv",
		RosterCSV:    "assets/databases/roster.csv",
		IconSet:      "assets/images/IconSet.png",
		Font:         "assets/fonts/MPLUS1p-Regular.ttf",
	}
}

// DefaultConfig は設定ファイルに記述がない項目の既定値です。
func DefaultConfig() Config {
	var cfg Config
	cfg.UI.Screen.Width = 640
	cfg.UI.Screen.Height = 480
	cfg.UI.FontSize = 12
	cfg.UI.StatusWindow.Width = 420
	cfg.UI.StatusWindow.RowHeight = 40
	cfg.UI.StatusWindow.Padding = 12
	cfg.UI.StatusWindow.Spacing = 4
	cfg.UI.StateIcons = StateIconsConfig{
		MaxIcons:          4,
		FrameWait:         40,
		AnchorMode:        core.AnchorStatus,
		LineHeight:        36,
		WarningTurns:      3,
		AdvanceWhenHidden: true,
	}
	cfg.UI.Colors = ParsedColors{
		White:      color.White,
		Black:      color.Black,
		Background: color.RGBA{R: 0x10, G: 0x12, B: 0x1e, A: 0xff},
		Panel:      color.RGBA{R: 0x1c, G: 0x24, B: 0x3a, A: 0xff},
		Team1:      color.RGBA{R: 0x4a, G: 0xc8, B: 0xff, A: 0xff},
		Team2:      color.RGBA{R: 0xff, G: 0x6a, B: 0x6a, A: 0xff},
		Warning:    color.RGBA{R: 0xff, G: 0xc8, B: 0x28, A: 0xff},
		Outline:    color.Black,
	}
	cfg.Demo = DemoConfig{
		TurnFrames:     90,
		ApplyChance:    0.35,
		InitialMarkers: 4,
	}
	cfg.AssetPaths = DefaultAssetPaths()
	return cfg
}

// LoadConfig は設定ファイルを読み込み、検証済みのConfigを返します。
// 拡張子が .yaml / .yml の場合はYAMLとして、それ以外はJSONとして解釈します。
// ファイルに記述のない項目は DefaultConfig の値のまま残ります。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", path, err)
	}
	if err := DecodeConfig(raw, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("設定ファイル %s のパースに失敗しました: %w", path, err)
	}
	cfg.AssetPaths.GameSettings = path
	cfg.Validate()
	log.Printf("設定ファイル %s を読み込みました。", path)
	return cfg, nil
}

// DecodeConfig は拡張子に応じてJSONまたはYAMLを cfg に重ねてデコードします。
func DecodeConfig(raw []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return fmt.Errorf("YAMLのアンマーシャルに失敗しました: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, cfg); err != nil {
			return fmt.Errorf("JSONのアンマーシャルに失敗しました: %w", err)
		}
	}
	return nil
}

// Validate は各設定値を許容範囲に収めます。
func (c *Config) Validate() {
	si := &c.UI.StateIcons
	si.MaxIcons = clampInt(si.MaxIcons, MinMaxIcons, MaxMaxIcons)
	si.FrameWait = clampInt(si.FrameWait, MinFrameWait, MaxFrameWait)
	si.OffsetX = clampInt(si.OffsetX, -MaxOffsetX, MaxOffsetX)
	si.OffsetY = clampInt(si.OffsetY, -MaxOffsetY, MaxOffsetY)
	switch si.AnchorMode {
	case core.AnchorCenter, core.AnchorStatus:
	default:
		log.Printf("不明なAnchorMode '%s' です。'%s' を使用します。", si.AnchorMode, core.AnchorStatus)
		si.AnchorMode = core.AnchorStatus
	}
	if si.LineHeight <= 0 {
		si.LineHeight = 36
	}
	if si.WarningTurns < 0 {
		si.WarningTurns = 0
	}

	if c.UI.Screen.Width <= 0 || c.UI.Screen.Height <= 0 {
		c.UI.Screen.Width, c.UI.Screen.Height = 640, 480
	}
	if c.UI.FontSize <= 0 {
		c.UI.FontSize = 12
	}
	if c.UI.StatusWindow.RowHeight < core.IconCellHeight {
		c.UI.StatusWindow.RowHeight = core.IconCellHeight
	}
	if c.Demo.TurnFrames < 1 {
		c.Demo.TurnFrames = 1
	}
	c.Demo.ApplyChance = max(0, min(1, c.Demo.ApplyChance))
	if c.Demo.InitialMarkers < 0 {
		c.Demo.InitialMarkers = 0
	}
}
