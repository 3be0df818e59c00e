package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// rebuildRows re-flattens the block tree using the current expansion state.
func (m *Model) rebuildRows() {
	m.rows = m.store.Rows(m.expanded)
	if len(m.rows) == 0 {
		m.cursor = 0
		m.treeOffset = 0
		return
	}
	m.cursor = clamp(m.cursor, 0, len(m.rows)-1)
}

// rowIndex returns the row showing id, or -1 when it is not visible.
func (m *Model) rowIndex(id string) int {
	for i, row := range m.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// cursorID returns the block under the cursor.
func (m *Model) cursorID() (string, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return "", false
	}
	return m.rows[m.cursor].ID, true
}

// syncFromStore brings the tree, toolbar and preview in line with the
// store. It is called after every store mutation, including selection
// changes made by the toolbar itself.
func (m *Model) syncFromStore() tea.Cmd {
	selected, hasSelection := m.store.SelectedBlockID()
	if hasSelection {
		chain := m.store.Ancestors(selected)
		for _, ancestor := range chain[:max(0, len(chain)-1)] {
			m.expanded[ancestor] = true
		}
	}

	m.rebuildRows()
	if hasSelection {
		if i := m.rowIndex(selected); i >= 0 {
			m.cursor = i
		}
	}
	m.adjustTreeOffset()

	return tea.Batch(m.toolbar.Sync(), m.requestPreview())
}

// moveCursor moves the cursor by delta rows and selects the block there.
func (m *Model) moveCursor(delta int) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.rows)-1)
	return m.selectCursor()
}

// selectCursor selects the block under the cursor.
func (m *Model) selectCursor() tea.Cmd {
	id, ok := m.cursorID()
	if !ok {
		return nil
	}
	m.store.SelectBlock(id, nil)
	return m.syncFromStore()
}

// adjustTreeOffset scrolls the tree so the cursor remains visible.
func (m *Model) adjustTreeOffset() {
	visibleHeight := m.calculateLayout().TreeRows
	if visibleHeight <= 0 {
		m.treeOffset = 0
		return
	}

	if m.cursor < m.treeOffset {
		m.treeOffset = m.cursor
	}
	if m.cursor >= m.treeOffset+visibleHeight {
		m.treeOffset = m.cursor - visibleHeight + 1
	}
	m.treeOffset = clamp(m.treeOffset, 0, max(0, len(m.rows)-1))
}

// setExpanded expands or collapses the block under the cursor. Collapsing
// a block whose descendant is selected moves the selection onto it so the
// selection never hides inside a closed branch.
func (m *Model) setExpanded(open bool) tea.Cmd {
	id, ok := m.cursorID()
	if !ok || m.store.BlockCount(id) == 0 {
		return nil
	}
	if m.expanded[id] == open {
		return nil
	}
	m.expanded[id] = open

	if !open {
		if selected, ok := m.store.SelectedBlockID(); ok && selected != id && m.isAncestor(id, selected) {
			m.store.SelectBlock(id, nil)
		}
	}
	return m.syncFromStore()
}

func (m *Model) isAncestor(ancestor, id string) bool {
	chain := m.store.Ancestors(id)
	for _, a := range chain[:max(0, len(chain)-1)] {
		if a == ancestor {
			return true
		}
	}
	return false
}
