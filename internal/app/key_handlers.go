package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleBrowseKey dispatches browse-mode key presses through the action map.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.actionForKey(msg.String()) {
	case actionQuit:
		m.Close()
		return m, tea.Quit
	case actionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case actionCursorUp:
		return m, m.moveCursor(-1)
	case actionCursorDown:
		return m, m.moveCursor(1)
	case actionExpand:
		return m, m.setExpanded(true)
	case actionCollapse:
		return m, m.setExpanded(false)
	case actionSelect:
		return m, m.selectCursor()
	case actionDeselect:
		m.store.ClearSelection()
		m.status = "Selection cleared"
		return m, m.syncFromStore()
	case actionNavigateUp:
		return m, m.navigateUp()
	case actionEdit:
		return m, m.startEditBlock()
	case actionAdd:
		return m, m.addBlock()
	case actionDelete:
		m.startDelete()
		return m, nil
	case actionCopyContent:
		m.copySelectedContentToClipboard()
		return m, nil
	case actionCopyPath:
		m.copySelectedPathToClipboard()
		return m, nil
	case actionToggleRTL:
		rtl := !m.store.Settings().IsRTL
		m.store.SetRTL(rtl)
		m.modified = true
		m.status = "Left-to-right layout"
		if rtl {
			m.status = "Right-to-left layout"
		}
		return m, m.syncFromStore()
	case actionWrite:
		m.writeDocument()
		return m, nil
	}
	return m, nil
}

// navigateUp activates the toolbar's navigate-up button.
func (m *Model) navigateUp() tea.Cmd {
	if !m.toolbar.NavigateUp(nil) {
		m.status = "Already at the top level"
		return nil
	}
	m.status = ""
	return m.syncFromStore()
}

// handleConfirmDeleteKey resolves the delete prompt: y deletes, anything
// else cancels.
func (m *Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if msg.String() != "y" {
		m.status = "Delete cancelled"
		return m, nil
	}
	return m, m.deleteSelected()
}
