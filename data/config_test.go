package data

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"stateicon-ebiten/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig_JSONKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	raw := []byte(`{"UI":{"StateIcons":{"MaxIcons":6,"OffsetX":12},"Colors":{"Warning":"#ff0000"}}}`)
	require.NoError(t, DecodeConfig(raw, ".json", &cfg))

	si := cfg.UI.StateIcons
	assert.Equal(t, 6, si.MaxIcons)
	assert.Equal(t, 12, si.OffsetX)
	assert.Equal(t, 40, si.FrameWait)
	assert.True(t, si.AdvanceWhenHidden)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, cfg.UI.Colors.Warning)
	assert.Equal(t, color.White, cfg.UI.Colors.White)
}

func TestDecodeConfig_YAML(t *testing.T) {
	cfg := DefaultConfig()
	raw := []byte(`
UI:
  StateIcons:
    FrameWait: 60
    AnchorMode: center
    AdvanceWhenHidden: false
  Colors:
    Team1: "00ff00"
Demo:
  TurnFrames: 30
`)
	require.NoError(t, DecodeConfig(raw, ".yml", &cfg))

	assert.Equal(t, 60, cfg.UI.StateIcons.FrameWait)
	assert.Equal(t, core.AnchorCenter, cfg.UI.StateIcons.AnchorMode)
	assert.False(t, cfg.UI.StateIcons.AdvanceWhenHidden)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, cfg.UI.Colors.Team1)
	assert.Equal(t, 30, cfg.Demo.TurnFrames)
	assert.Equal(t, 4, cfg.UI.StateIcons.MaxIcons)
	assert.Equal(t, 12, cfg.UI.FontSize)
}

func TestDecodeConfig_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, DecodeConfig([]byte(`{"UI":`), ".json", &cfg))
	assert.Error(t, DecodeConfig([]byte("UI: [1, 2"), ".yaml", &cfg))
}

func TestConfig_ValidateClamps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StateIconsConfig)
		check  func(*testing.T, StateIconsConfig)
	}{
		{
			name:   "max icons upper bound",
			mutate: func(s *StateIconsConfig) { s.MaxIcons = 20 },
			check:  func(t *testing.T, s StateIconsConfig) { assert.Equal(t, MaxMaxIcons, s.MaxIcons) },
		},
		{
			name:   "max icons lower bound",
			mutate: func(s *StateIconsConfig) { s.MaxIcons = 0 },
			check:  func(t *testing.T, s StateIconsConfig) { assert.Equal(t, MinMaxIcons, s.MaxIcons) },
		},
		{
			name:   "frame wait",
			mutate: func(s *StateIconsConfig) { s.FrameWait = 5 },
			check:  func(t *testing.T, s StateIconsConfig) { assert.Equal(t, MinFrameWait, s.FrameWait) },
		},
		{
			name:   "offsets",
			mutate: func(s *StateIconsConfig) { s.OffsetX, s.OffsetY = -100, 100 },
			check: func(t *testing.T, s StateIconsConfig) {
				assert.Equal(t, -MaxOffsetX, s.OffsetX)
				assert.Equal(t, MaxOffsetY, s.OffsetY)
			},
		},
		{
			name:   "unknown anchor mode",
			mutate: func(s *StateIconsConfig) { s.AnchorMode = "left" },
			check:  func(t *testing.T, s StateIconsConfig) { assert.Equal(t, core.AnchorStatus, s.AnchorMode) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.UI.StateIcons)
			cfg.Validate()
			tt.check(t, cfg.UI.StateIcons)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"UI":{"StateIcons":{"FrameWait":500}}}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, MaxFrameWait, cfg.UI.StateIcons.FrameWait)
	assert.Equal(t, path, cfg.AssetPaths.GameSettings)

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, parseHexColor("123456"))
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, parseHexColor("#123456"))
	assert.Equal(t, color.White, parseHexColor("fff"))
	assert.Equal(t, color.White, parseHexColor("zzzzzz"))
}
