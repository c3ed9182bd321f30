package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageManager_FormatMessage(t *testing.T) {
	mm, err := NewMessageManager([]byte(`[
		{"id":"removed","text":"{name} が隊列から外れた"},
		{"id":"turn","text":"ターン %d"}
	]`))
	require.NoError(t, err)

	tests := []struct {
		name   string
		id     string
		params map[string]any
		want   string
	}{
		{"named placeholder", "removed", map[string]any{"name": "アリス"}, "アリス が隊列から外れた"},
		{"missing placeholder", "removed", nil, "{name} が隊列から外れた"},
		{"ordered args", "turn", map[string]any{"ordered_args": []any{7}}, "ターン 7"},
		{"not enough ordered args", "turn", map[string]any{"ordered_args": []any{}}, "ターン %d"},
		{"unknown id", "nope", nil, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mm.FormatMessage(tt.id, tt.params))
		})
	}
}

func TestNewMessageManager_Errors(t *testing.T) {
	_, err := NewMessageManager(nil)
	assert.Error(t, err)
	_, err = NewMessageManager([]byte(`{"id":1}`))
	assert.Error(t, err)
}
