package data

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"stateicon-ebiten/core"
)

var placeholderRegex = regexp.MustCompile(`{(\w+)}`)

// MessageManager はメッセージテンプレートの読み込みと整形を行います。
type MessageManager struct {
	messages map[string]string
}

// NewMessageManager は、JSON形式のメッセージデータを受け取り、新しいMessageManagerを初期化して返します。
func NewMessageManager(jsonData []byte) (*MessageManager, error) {
	if jsonData == nil {
		return nil, fmt.Errorf("メッセージデータがnilです")
	}

	var templates []core.MessageTemplate
	if err := json.Unmarshal(jsonData, &templates); err != nil {
		return nil, fmt.Errorf("メッセージデータのJSONパースに失敗しました: %w", err)
	}

	messages := make(map[string]string, len(templates))
	for _, t := range templates {
		messages[t.ID] = t.Text
	}

	log.Printf("%d件のメッセージをロードしました。", len(messages))
	return &MessageManager{messages: messages}, nil
}

// GetRawMessage はIDに対応するテンプレートをそのまま返します。
func (mm *MessageManager) GetRawMessage(id string) (string, bool) {
	msg, found := mm.messages[id]
	return msg, found
}

// FormatMessage はテンプレートをパラメータで整形します。
// {key} は params[key] に置き換えられます。
// params["ordered_args"] がある場合は %s, %d などの fmt 形式として扱います。
func (mm *MessageManager) FormatMessage(id string, params map[string]any) string {
	template, ok := mm.messages[id]
	if !ok {
		log.Printf("警告: ID '%s' のメッセージが見つかりません。", id)
		return id
	}

	if orderedArgs, ok := params["ordered_args"].([]any); ok {
		numSpecifiers := strings.Count(template, "%s") +
			strings.Count(template, "%d") +
			strings.Count(template, "%f") +
			strings.Count(template, "%v")

		if len(orderedArgs) < numSpecifiers {
			log.Printf("警告: メッセージ '%s' の引数が足りません。必要数 %d、指定数 %d。", id, numSpecifiers, len(orderedArgs))
			return template
		}
		return fmt.Sprintf(template, orderedArgs[:numSpecifiers]...)
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if val, pOk := params[key]; pOk {
			return fmt.Sprintf("%v", val)
		}
		log.Printf("警告: メッセージ '%s' のプレースホルダー %s に対応する値がありません。", id, match)
		return match
	})
}
