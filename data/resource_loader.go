package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"

	"stateicon-ebiten/core"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// NewLoader はリソースローダーを初期化してそのインスタンスを返します。
func NewLoader(audioContext *audio.Context, assetPaths *AssetPaths) *resource.Loader {
	loader := resource.NewLoader(audioContext)

	loader.OpenAssetFunc = func(path string) io.ReadCloser {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(fmt.Errorf("アセット %s の読み込みに失敗しました: %w", path, err))
		}
		return io.NopCloser(bytes.NewReader(data))
	}

	loader.RawRegistry.Assign(map[resource.RawID]resource.RawInfo{
		RawStatesCSV:    {Path: assetPaths.StatesCSV},
		RawRosterCSV:    {Path: assetPaths.RosterCSV},
		RawMessagesJSON: {Path: assetPaths.Messages},
		RawIconSetPNG:   {Path: assetPaths.IconSet},
	})
	return loader
}

// LoadFonts はUIラベル用のフォントを読み込みます。
// フォントファイルが無い場合は日本語グリフを持つビットマップフォントで代用します。
func LoadFonts(loader *resource.Loader, assetPaths *AssetPaths, config *Config) (face text.Face, err error) {
	if _, statErr := os.Stat(assetPaths.Font); statErr != nil {
		log.Printf("フォント %s が見つからないため内蔵ビットマップフォントを使用します: %v", assetPaths.Font, statErr)
		return FallbackFontFace(), nil
	}

	loader.FontRegistry.Assign(map[resource.FontID]resource.FontInfo{
		FontUIRegular: {Path: assetPaths.Font, Size: config.UI.FontSize},
	})

	// ローダーは壊れたフォントで panic するためエラーに変換します
	defer func() {
		if r := recover(); r != nil {
			face = nil
			err = fmt.Errorf("フォント %s の読み込みに失敗しました: %v", assetPaths.Font, r)
		}
	}()
	return text.NewGoXFace(loader.LoadFont(FontUIRegular).Face), nil
}

// fallbackGlyphs はJIS X 0208の文字を収録した12pxのビットマップフォントです。
var fallbackGlyphs font.Face = bitmapfont.Face

// FallbackFontFace は日本語を含む内蔵ビットマップフォントを返します。
func FallbackFontFace() text.Face {
	return text.NewGoXFace(fallbackGlyphs)
}

// StaticData は起動時に読み込む静的データです。
type StaticData struct {
	GameData *core.GameData
	Messages *MessageManager
}

// LoadStaticData はCSVとJSONのリソースを読み込みます。
// ローダーからの読み出しは順に行い、パースだけを並行して実行します。
func LoadStaticData(loader *resource.Loader) (*StaticData, error) {
	statesRaw := loader.LoadRaw(RawStatesCSV).Data
	rosterRaw := loader.LoadRaw(RawRosterCSV).Data
	messagesRaw := loader.LoadRaw(RawMessagesJSON).Data

	gameData := &core.GameData{}
	var messages *MessageManager

	var g errgroup.Group
	g.Go(func() error {
		states, err := ParseStatesCSV(statesRaw)
		if err != nil {
			return fmt.Errorf("states.csv の読み込みに失敗しました: %w", err)
		}
		gameData.States = states
		return nil
	})
	g.Go(func() error {
		battlers, err := ParseRosterCSV(rosterRaw)
		if err != nil {
			return fmt.Errorf("roster.csv の読み込みに失敗しました: %w", err)
		}
		gameData.Battlers = battlers
		return nil
	})
	g.Go(func() error {
		mm, err := NewMessageManager(messagesRaw)
		if err != nil {
			return fmt.Errorf("messages.json の読み込みに失敗しました: %w", err)
		}
		messages = mm
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("ステート定義%d件、バトラー%d体を読み込みました。", len(gameData.States), len(gameData.Battlers))
	return &StaticData{GameData: gameData, Messages: messages}, nil
}

// ParseStatesCSV は states.csv (id,name,icon_index,min_turns,max_turns,priority) をパースします。
func ParseStatesCSV(data []byte) ([]core.StateDefinition, error) {
	records, err := readRecords(data)
	if err != nil {
		return nil, err
	}
	states := make([]core.StateDefinition, 0, len(records))
	for _, record := range records {
		if len(record) < 6 {
			log.Printf("列数が足りないステート定義をスキップします: %v", record)
			continue
		}
		def := core.StateDefinition{
			ID:        record[0],
			Name:      record[1],
			IconIndex: parseInt(record[2], 0),
			MinTurns:  parseInt(record[3], 0),
			MaxTurns:  parseInt(record[4], 0),
			Priority:  parseInt(record[5], 0),
		}
		if def.IconIndex <= 0 {
			log.Printf("ステート %s はアイコンを持たないためスキップします。", def.ID)
			continue
		}
		states = append(states, def)
	}
	return states, nil
}

// ParseRosterCSV は roster.csv (id,name,team,draw_index) をパースします。
func ParseRosterCSV(data []byte) ([]core.BattlerData, error) {
	records, err := readRecords(data)
	if err != nil {
		return nil, err
	}
	battlers := make([]core.BattlerData, 0, len(records))
	for _, record := range records {
		if len(record) < 4 {
			log.Printf("列数が足りないバトラー定義をスキップします: %v", record)
			continue
		}
		battlers = append(battlers, core.BattlerData{
			ID:        record[0],
			Name:      record[1],
			Team:      core.TeamID(parseInt(record[2], 0)),
			DrawIndex: parseInt(record[3], 0),
		})
	}
	return battlers, nil
}

// readRecords はヘッダー行を読み飛ばして残りのレコードを返します。
func readRecords(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("ヘッダーの読み込みに失敗しました: %w", err)
	}
	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("レコードの読み込みに失敗しました: %v", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeIconSet はPNGのバイト列からアイコンセット画像をデコードします。
func DecodeIconSet(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("アイコンセットのデコードに失敗しました: %w", err)
	}
	return img, nil
}

// IconSetLoadFunc はアイコンセットを読み込む関数を返します。IconAtlas.LoadAsync に渡します。
// ファイルが存在しない場合は生成したプレースホルダーを使います。
func IconSetLoadFunc(loader *resource.Loader, assetPaths *AssetPaths) func() (image.Image, error) {
	return func() (image.Image, error) {
		if _, err := os.Stat(assetPaths.IconSet); err != nil {
			log.Printf("アイコンセット %s が見つかりません。プレースホルダーを使用します。", assetPaths.IconSet)
			return GeneratePlaceholderIconSet(4), nil
		}
		return DecodeIconSet(loader.LoadRaw(RawIconSetPNG).Data)
	}
}

// GeneratePlaceholderIconSet は rows 行分の仮アイコンセットを生成します。
// 各セルは番号ごとに色の異なる枠と、アイコン番号の文字を持ちます。
func GeneratePlaceholderIconSet(rows int) *image.RGBA {
	rows = max(1, rows)
	cw, ch := core.IconCellWidth, core.IconCellHeight
	img := image.NewRGBA(image.Rect(0, 0, cw*core.IconsPerRow, ch*rows))
	d := &font.Drawer{Dst: img, Src: image.White, Face: basicfont.Face7x13}

	for idx := 1; idx < core.IconsPerRow*rows; idx++ {
		x := (idx % core.IconsPerRow) * cw
		y := (idx / core.IconsPerRow) * ch
		cell := image.Rect(x+2, y+2, x+cw-2, y+ch-2)
		draw.Draw(img, cell, image.NewUniform(placeholderColor(idx)), image.Point{}, draw.Src)
		draw.Draw(img, cell.Inset(3), image.NewUniform(color.RGBA{A: 0xc0}), image.Point{}, draw.Over)

		label := fmt.Sprintf("%d", idx)
		d.Dot = fixed.P(x+(cw-font.MeasureString(d.Face, label).Ceil())/2, y+ch/2+4)
		d.DrawString(label)
	}
	return img
}

// placeholderColor は行ごとに系統の異なる色を返します。
// 1行目はステート、3行目はバフ、4行目はデバフに対応します。
func placeholderColor(idx int) color.RGBA {
	shade := uint8(120 + (idx%core.IconsPerRow)*8)
	switch {
	case idx >= core.IconDebuffStart:
		return color.RGBA{R: shade, G: 60, B: 60, A: 255}
	case idx >= core.IconBuffStart:
		return color.RGBA{R: 60, G: shade, B: 90, A: 255}
	default:
		return color.RGBA{R: 90, G: 90, B: shade, A: 255}
	}
}
