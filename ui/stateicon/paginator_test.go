package stateicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{10, 4, 3},
		{7, 1, 7},
		{3, 0, 3}, // 0 は 1 に丸める
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.n, tt.size), "n=%d size=%d", tt.n, tt.size)
	}
}

func TestSelectPage_SplitsIntoFixedPages(t *testing.T) {
	entries := entriesN(10)

	p0 := SelectPage(entries, 0, 4, 40)
	p1 := SelectPage(entries, 40, 4, 40)
	p2 := SelectPage(entries, 80, 4, 40)

	require.Equal(t, 3, p0.Count)
	assert.Equal(t, entries[0:4], p0.Entries)
	assert.Equal(t, entries[4:8], p1.Entries)
	assert.Equal(t, entries[8:10], p2.Entries)
	assert.Equal(t, []int{0, 1, 2}, []int{p0.Index, p1.Index, p2.Index})
}

func TestSelectPage_WrapsAround(t *testing.T) {
	entries := entriesN(10)

	p := SelectPage(entries, 125, 4, 40)
	assert.Equal(t, 0, p.Index)
	assert.Equal(t, 3, p.Count)

	p = SelectPage(entries, 39, 4, 40)
	assert.Equal(t, 0, p.Index)
	p = SelectPage(entries, 119, 4, 40)
	assert.Equal(t, 2, p.Index)
}

func TestSelectPage_Empty(t *testing.T) {
	p := SelectPage(nil, 500, 4, 40)
	assert.Equal(t, 0, p.Count)
	assert.Empty(t, p.Entries)
}

func TestSelectPage_ShrunkEntrySetStaysInRange(t *testing.T) {
	// 9件(3ページ)の最終ページを表示中に3件(1ページ)へ減った場合
	elapsed := 2*40 + 10
	before := SelectPage(entriesN(9), elapsed, 4, 40)
	require.Equal(t, 2, before.Index)

	after := SelectPage(entriesN(3), elapsed, 4, 40)
	assert.Equal(t, 0, after.Index)
	assert.Equal(t, 1, after.Count)
	assert.Len(t, after.Entries, 3)

	for frames := 0; frames < 1000; frames += 7 {
		p := SelectPage(entriesN(3), frames, 4, 40)
		assert.Less(t, p.Index, p.Count)
	}
}

func TestSelectPage_ClampsInvalidArguments(t *testing.T) {
	p := SelectPage(entriesN(3), -5, 0, 0)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, 0, p.Index)
	assert.Len(t, p.Entries, 1)
}
