package stateicon

import (
	"stateicon-ebiten/core"
)

// Page は現在表示すべきページです。
type Page struct {
	Entries []core.DisplayEntry
	Index   int
	Count   int
}

// PageCount は ceil(n / pageSize) を返します。
func PageCount(n, pageSize int) int {
	if n <= 0 {
		return 0
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return (n + pageSize - 1) / pageSize
}

// SelectPage は経過フレーム数から表示ページを選びます。
// ページ番号は常に現在のページ数に対して計算するため、エントリが減った直後でも範囲外になりません。
func SelectPage(entries []core.DisplayEntry, elapsedFrames, pageSize, pageDurationFrames int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageDurationFrames < 1 {
		pageDurationFrames = 1
	}
	if elapsedFrames < 0 {
		elapsedFrames = 0
	}

	count := PageCount(len(entries), pageSize)
	if count == 0 {
		return Page{}
	}

	index := (elapsedFrames / pageDurationFrames) % count
	start := index * pageSize
	end := min(start+pageSize, len(entries))
	return Page{
		Entries: entries[start:end],
		Index:   index,
		Count:   count,
	}
}
