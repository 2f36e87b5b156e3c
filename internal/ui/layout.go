package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact page sizes and
	// a single tile column are used.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width for three tile columns.
	LayoutWideWidth = 140
)

// Sizing constants.
const (
	// tileWidth is the outer width of one category tile.
	tileWidth = 30

	// modalMaxWidth caps the width of detail and form modals.
	modalMaxWidth = 72

	// chromeLines is the number of lines used by header, tabs, pager and footer.
	chromeLines = 7
)

// Timing constants.
const (
	// FlashDuration is how long a status message stays in the footer.
	FlashDuration = 4 * time.Second

	// RequestTimeout bounds a single UI-initiated API call.
	RequestTimeout = 15 * time.Second

	// SnapshotInterval is how often the header re-reads the quote snapshot.
	SnapshotInterval = 5 * time.Second
)
