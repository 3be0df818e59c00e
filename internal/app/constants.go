package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// DefaultTreeWidth is the widest the block tree pane grows.
	DefaultTreeWidth = 40

	// TreeWidthDivider determines tree width as terminal_width / this value
	// when the terminal is narrow.
	TreeWidthDivider = 3

	// FooterRows is the number of rows reserved for the help and status line.
	FooterRows = 2

	// HeaderRows is the block title line above the preview.
	HeaderRows = 1
)

// Rendering constants control preview timing and caching
const (
	// PreviewDebounce delays glamour renders while the selection is moving.
	PreviewDebounce = 150 * time.Millisecond

	// RenderWidthBucket is the granularity for width-based render caching.
	// Widths are rounded to nearest multiple of this value.
	RenderWidthBucket = 20

	// MaxRenderCacheEntries bounds the preview cache.
	MaxRenderCacheEntries = 256
)

// Block defaults
const (
	// NewBlockName is the block type inserted by the add action.
	NewBlockName = "core/paragraph"

	// ContentPreviewLength is how many columns of content the tree shows
	// next to a block title.
	ContentPreviewLength = 24
)
