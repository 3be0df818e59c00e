package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/breadcrumb"
)

// View draws the full UI (tree pane + preview pane with toolbar + footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	leftPane := m.renderTree(layout)
	rightPane := m.renderRight(layout)
	row := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	row = padBlock(row, m.width, layout.ContentHeight)

	view := row + "\n" + m.renderFooter(m.width)
	return padBlock(view, m.width, m.height)
}

// renderTree draws the block tree pane.
func (m *Model) renderTree(layout LayoutDimensions) string {
	innerWidth := max(0, layout.LeftWidth-paneStyle.GetHorizontalFrameSize())

	title := "Blocks"
	if m.modified {
		title += " •"
	}
	lines := []string{truncate(titleStyle.Render(title), innerWidth)}

	selected, _ := m.store.SelectedBlockID()
	start := min(m.treeOffset, max(0, len(m.rows)-1))
	end := min(len(m.rows), start+layout.TreeRows)
	for i := start; i < end; i++ {
		row := m.rows[i]
		line := truncate(m.formatRow(row), innerWidth)
		switch {
		case row.ID == selected:
			line = selectedStyle.Render(line)
		case i == m.cursor && selected == "":
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.rows) == 0 {
		lines = append(lines, mutedStyle.Render("No blocks; press a to add one"))
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, max(0, layout.ContentHeight-paneStyle.GetVerticalFrameSize()))
	return paneStyle.
		Width(layout.LeftWidth - paneStyle.GetHorizontalBorderSize()).
		Height(layout.ContentHeight - paneStyle.GetVerticalBorderSize()).
		Render(content)
}

// formatRow renders one tree line: indent, fold marker, title and a short
// content preview.
func (m *Model) formatRow(row blocks.Row) string {
	block, _ := m.store.Block(row.ID)
	marker := "  "
	if row.HasChildren {
		marker = "▸ "
		if row.Expanded {
			marker = "▾ "
		}
	}
	line := strings.Repeat("  ", row.Depth) + marker + breadcrumb.Title(block.Name)
	if preview := firstLine(block.Content); preview != "" {
		line += " " + mutedStyle.Render(truncate(preview, ContentPreviewLength))
	}
	return line
}

// renderRight draws the header, the preview or editor, and the toolbar slot.
func (m *Model) renderRight(layout LayoutDimensions) string {
	style := previewPane
	if m.mode == modeEditBlock {
		style = editPane
	}

	var body string
	if m.mode == modeEditBlock {
		body = m.editor.View()
	} else {
		body = m.viewport.View()
	}

	content := strings.Join([]string{
		truncate(m.renderHeader(), layout.ViewportWidth),
		padBlock(body, layout.ViewportWidth, layout.ViewportHeight),
		padBlock(m.toolbar.View(layout.ViewportWidth), layout.ViewportWidth, m.toolbar.Height()),
	}, "\n")

	return style.
		Width(layout.RightWidth - style.GetHorizontalBorderSize()).
		Height(layout.ContentHeight - style.GetVerticalBorderSize()).
		Render(content)
}

// renderHeader describes the selected block above the preview.
func (m *Model) renderHeader() string {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		return titleStyle.Render("No selection")
	}
	block, _ := m.store.Block(id)
	header := titleStyle.Render(breadcrumb.Title(block.Name))
	if count := m.store.BlockCount(id); count > 0 {
		header += mutedStyle.Render(fmt.Sprintf(" · %d inner", count))
	}
	if m.mode == modeEditBlock {
		header += editStatus.Render("  editing (ctrl+s save, esc cancel)")
	}
	return header
}

// renderFooter draws the help line and the status line.
func (m *Model) renderFooter(width int) string {
	m.help.ShowAll = false
	helpLine := m.help.View(footerKeys{m: m})
	if m.showHelp {
		m.help.ShowAll = true
		helpLine = strings.ReplaceAll(m.help.View(footerKeys{m: m}), "\n", "  ")
	}

	status := m.status
	if m.mode == modeConfirmDelete {
		status = warnStyle.Render(status)
	} else {
		status = statusStyle.Render(status)
	}
	if summary := m.blockMetricsSummary(); summary != "" {
		status += mutedStyle.Render("  " + summary)
	}
	return truncate(helpLine, width) + "\n" + truncate(status, width)
}
