// layout.go centralizes the terminal layout for the two-pane UI.
//
// The tree pane sits on the left; the right pane stacks a header line, the
// preview (or editor) and the floating toolbar slot. The footer spans the
// full width below both panes. Mouse handling relies on the same numbers to
// map clicks back onto rows and the toolbar button.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	LeftWidth      int // width of the tree pane including border/padding
	RightWidth     int // width of the right pane
	ContentHeight  int // height of both panes (terminal height minus footer)
	TreeRows       int // block rows visible in the tree pane
	ViewportWidth  int // usable width inside the right pane
	ViewportHeight int // rows left for preview/editor after header and toolbar
	ToolbarTop     int // screen row of the first toolbar slot line
	InnerLeft      int // screen column where right pane content starts
}

// calculateLayout computes all UI dimensions from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	leftWidth := min(DefaultTreeWidth, m.width/TreeWidthDivider)
	rightWidth := max(0, m.width-leftWidth)
	contentHeight := max(0, m.height-FooterRows)

	rightPaneStyle := previewPane
	if m.mode == modeEditBlock {
		rightPaneStyle = editPane
	}

	viewportWidth := max(0, rightWidth-rightPaneStyle.GetHorizontalFrameSize())
	inner := max(0, contentHeight-rightPaneStyle.GetVerticalFrameSize())
	viewportHeight := max(0, inner-HeaderRows-m.toolbar.Height())

	return LayoutDimensions{
		LeftWidth:      leftWidth,
		RightWidth:     rightWidth,
		ContentHeight:  contentHeight,
		TreeRows:       max(0, contentHeight-paneStyle.GetVerticalFrameSize()-HeaderRows),
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		ToolbarTop:     rightPaneStyle.GetBorderTopSize() + HeaderRows + viewportHeight,
		InnerLeft:      leftWidth + rightPaneStyle.GetBorderLeftSize() + rightPaneStyle.GetPaddingLeft(),
	}
}

// applyLayout sizes the preview and editor widgets.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.viewport.Width = layout.ViewportWidth
	m.viewport.Height = layout.ViewportHeight
	m.editor.SetWidth(layout.ViewportWidth)
	m.editor.SetHeight(layout.ViewportHeight)
}

// updateLayout recomputes and applies layout after a resize or mode switch.
func (m *Model) updateLayout() {
	m.applyLayout(m.calculateLayout())
}
