package data

import (
	resource "github.com/quasilyte/ebitengine-resource"
)

// Resource IDs
const (
	_ resource.FontID = iota
	FontUIRegular
)

const (
	_ resource.RawID = iota
	RawStatesCSV
	RawRosterCSV
	RawMessagesJSON
	RawIconSetPNG
)
