package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.updateLayout()
	m.adjustTreeOffset()
	return m, m.requestPreview()
}

// handleMouse maps left clicks onto the toolbar button and tree rows.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.mode != modeBrowse {
		return m, nil
	}

	layout := m.calculateLayout()

	if msg.X >= layout.InnerLeft && msg.Y == layout.ToolbarTop+m.toolbar.OffsetRows() {
		if m.toolbar.HitUpButton(msg.X-layout.InnerLeft, layout.ViewportWidth) {
			return m, m.navigateUp()
		}
		return m, nil
	}

	if msg.X < layout.LeftWidth {
		// Tree rows start below the top border and the pane title.
		row := msg.Y - paneStyle.GetBorderTopSize() - HeaderRows
		if row < 0 || row >= layout.TreeRows {
			return m, nil
		}
		index := m.treeOffset + row
		if index >= len(m.rows) {
			return m, nil
		}
		m.cursor = index
		return m, m.selectCursor()
	}
	return m, nil
}
