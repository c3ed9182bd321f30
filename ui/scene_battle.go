package ui

import (
	"log"

	"stateicon-ebiten/data"
	"stateicon-ebiten/ecs/component"
	"stateicon-ebiten/ecs/entity"
	"stateicon-ebiten/ecs/system"
	"stateicon-ebiten/ui/stateicon"

	"github.com/atotto/clipboard"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// BattleScene はバトラーのステータスウィンドウとステートアイコンを表示するシーンです。
// デモ用のターン進行でステートが付け外しされ、アイコンのページ送りを確認できます。
type BattleScene struct {
	resources *data.SharedResources
	manager   *SceneManager
	world     donburi.World
	tickCount int

	ui            *ebitenui.UI
	uiFactory     *UIFactory
	statusWindow  *StatusWindow
	messageWindow *MessageWindow
	iconLayer     *StateIconLayer
	turnSystem    *system.StatusTurnSystem
}

// NewBattleScene は新しいバトルシーンを作成します。
func NewBattleScene(res *data.SharedResources, manager *SceneManager) *BattleScene {
	world := donburi.NewWorld()
	entity.InitializeBattleWorld(world, res.GameData)

	bs := &BattleScene{
		resources: res,
		manager:   manager,
		world:     world,
		uiFactory: NewUIFactory(res.Config, res.Font, res.Messages),
	}

	positioner, driver := newStateIconEngine(res, system.NewMarkerSource(world))
	bs.iconLayer = NewStateIconLayer(positioner, driver)

	demo := res.Config.Demo
	bs.turnSystem = system.NewStatusTurnSystem(world, res.GameData.States, res.Rand, demo.TurnFrames, demo.ApplyChance)
	bs.turnSystem.SeedRandomMarkers(demo.InitialMarkers)

	root := createRootContainer()
	bs.statusWindow = NewStatusWindow(bs.uiFactory, positioner)
	bs.statusWindow.Attach(root)
	footer := createFooterContainer()
	bs.messageWindow = NewMessageWindow(bs.uiFactory)
	footer.AddChild(bs.messageWindow.Widget())
	root.AddChild(footer)
	bs.ui = &ebitenui.UI{Container: root}

	bs.statusWindow.Sync(world)
	return bs
}

// newStateIconEngine は設定からステートアイコンの配置と駆動を組み立てます。
func newStateIconEngine(res *data.SharedResources, source *system.MarkerSourceImpl) (*stateicon.Positioner, *stateicon.Driver) {
	cfg := res.Config.UI.StateIcons
	colors := res.Config.UI.Colors

	positioner := stateicon.NewPositioner(stateicon.PositionConfig{
		Mode:       cfg.AnchorMode,
		OffsetX:    cfg.OffsetX,
		OffsetY:    cfg.OffsetY,
		LineHeight: cfg.LineHeight,
		PageSize:   cfg.MaxIcons,
		CellWidth:  res.Atlas.CellWidth(),
		CellHeight: res.Atlas.CellHeight(),
	}, cfg.FrameWait)

	style := stateicon.DefaultCompositorStyle()
	style.NormalColor = colors.White
	style.WarningColor = colors.Warning
	style.OutlineColor = colors.Outline
	style.WarningTurns = cfg.WarningTurns

	driver := stateicon.NewDriver(
		stateicon.NewAggregator(source),
		stateicon.NewCompositor(res.Atlas, style),
		positioner,
		cfg.AdvanceWhenHidden,
	)
	return positioner, driver
}

func (bs *BattleScene) Update() error {
	bs.tickCount++
	bs.handleDebugInput()

	if bs.turnSystem.Update() {
		bs.messageWindow.SetMessage(bs.uiFactory.Message("turn_advanced", map[string]any{"turn": bs.turnSystem.Turn()}))
	}

	bs.statusWindow.Sync(bs.world)
	if bs.statusWindow.RowCount() == 0 {
		bs.manager.GoToResultScene(bs.uiFactory.Message("roster_empty", nil))
		return nil
	}

	bs.ui.Update()
	bs.iconLayer.Update()
	return nil
}

// handleDebugInput はデバッグ用のキー操作を処理します。
func (bs *BattleScene) handleDebugInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		bs.copyDump()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		bs.statusWindow.SetVisible(!bs.statusWindow.Visible())
		id := "status_window_shown"
		if !bs.statusWindow.Visible() {
			id = "status_window_hidden"
		}
		bs.messageWindow.SetMessage(bs.uiFactory.Message(id, nil))
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		bs.removeFirstBattler()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		bs.manager.GoToBattleScene()
	}
}

// copyDump は全インスタンスの表示状態をクリップボードにコピーします。
func (bs *BattleScene) copyDump() {
	header := bs.uiFactory.Message("dump_header", map[string]any{"turn": bs.turnSystem.Turn(), "frame": bs.tickCount})
	dump := header + "\n" + bs.iconLayer.Dump(bs.battlerName)
	if err := clipboard.WriteAll(dump); err != nil {
		log.Printf("クリップボードへのコピーに失敗しました: %v", err)
		bs.messageWindow.SetMessage(bs.uiFactory.Message("dump_copy_failed", nil))
		return
	}
	bs.messageWindow.SetMessage(bs.uiFactory.Message("dump_copied", nil))
}

func (bs *BattleScene) removeFirstBattler() {
	roster := entity.RosterEntries(bs.world)
	if len(roster) == 0 {
		return
	}
	name := component.SettingsComponent.Get(roster[0]).Name
	if entity.RemoveFromRoster(roster[0]) {
		bs.messageWindow.SetMessage(bs.uiFactory.Message("roster_removed", map[string]any{"name": name}))
	}
}

func (bs *BattleScene) battlerName(inst *stateicon.RenderInstance) string {
	if !bs.world.Valid(inst.Entity()) {
		return "?"
	}
	return component.SettingsComponent.Get(bs.world.Entry(inst.Entity())).Name
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(bs.resources.Config.UI.Colors.Background)
	bs.ui.Draw(screen)
	// ebitenui の描画でレイアウトが確定した後に配置する
	bs.statusWindow.PlaceIcons()
	bs.iconLayer.Draw(screen)
}

func (bs *BattleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return bs.resources.Config.UI.Screen.Width, bs.resources.Config.UI.Screen.Height
}
