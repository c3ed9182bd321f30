package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"stateicon-ebiten/core"
	"stateicon-ebiten/data"
	"stateicon-ebiten/ui"
	"stateicon-ebiten/ui/stateicon"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	configPath := flag.String("config", data.DefaultAssetPaths().GameSettings, "設定ファイル (.json / .yaml)")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Printf("カレントワーキングディレクトリの取得に失敗しました: %v", err)
	} else {
		log.Printf("カレントワーキングディレクトリ: %s", wd)
	}

	config, err := data.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	seed := config.Demo.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// リソースローダー用のオーディオコンテキスト
	audioContext := audio.NewContext(44100)
	loader := data.NewLoader(audioContext, &config.AssetPaths)

	static, err := data.LoadStaticData(loader)
	if err != nil {
		log.Fatalf("静的ゲームデータの読み込みに失敗しました: %v", err)
	}

	font, err := data.LoadFonts(loader, &config.AssetPaths, &config)
	if err != nil {
		log.Fatalf("フォントの読み込みに失敗しました: %v", err)
	}

	// アイコンセットは裏で読み込み、揃うまではアイコンの合成が保留されます
	atlas := stateicon.NewIconAtlas(core.IconCellWidth, core.IconCellHeight, core.IconsPerRow)
	atlas.LoadAsync(data.IconSetLoadFunc(loader, &config.AssetPaths))

	res := &data.SharedResources{
		Config:   &config,
		GameData: static.GameData,
		Messages: static.Messages,
		Font:     font,
		Atlas:    atlas,
		Rand:     rand.New(rand.NewSource(seed)),
	}

	manager := ui.NewSceneManager(res)

	// Ebitenのゲームを実行します。渡すのはbamennのシーケンスです。
	ebiten.SetWindowSize(config.UI.Screen.Width, config.UI.Screen.Height)
	ebiten.SetWindowTitle("State Icons")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(manager.Sequence); err != nil {
		log.Fatal(err)
	}
}
