package data

import (
	"math/rand"

	"stateicon-ebiten/core"
	"stateicon-ebiten/ui/stateicon"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SharedResources はシーン間で共有されるリソースを保持します。
type SharedResources struct {
	Config   *Config
	GameData *core.GameData
	Messages *MessageManager
	Font     text.Face
	Atlas    *stateicon.IconAtlas
	Rand     *rand.Rand
}
