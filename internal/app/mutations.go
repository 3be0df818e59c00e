package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/breadcrumb"
)

// addBlock appends an empty paragraph inside the selected block (or at the
// top level without a selection), selects it and opens the editor.
func (m *Model) addBlock() tea.Cmd {
	parent, _ := m.store.SelectedBlockID()
	id, err := m.store.InsertBlock(parent, -1, blocks.Block{Name: NewBlockName})
	if err != nil {
		m.setStatusError("Error adding block", err, "parent", parent)
		return nil
	}
	m.modified = true
	if parent != "" {
		m.expanded[parent] = true
	}

	start := 0
	m.store.SelectBlock(id, &start)
	sync := m.syncFromStore()
	return tea.Batch(sync, m.startEditBlock())
}

// startDelete asks for confirmation before deleting the selected block.
func (m *Model) startDelete() {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.status = "Select a block to delete"
		return
	}
	block, _ := m.store.Block(id)
	m.mode = modeConfirmDelete
	m.status = fmt.Sprintf("Delete %s and %d inner blocks? (y/n)", breadcrumb.Title(block.Name), m.countDescendants(id))
}

// deleteSelected removes the selected block and selects its parent.
func (m *Model) deleteSelected() tea.Cmd {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		return nil
	}
	parent, hasParent := m.store.ParentID(id)
	if err := m.store.RemoveBlock(id); err != nil {
		m.setStatusError("Error deleting block", err, "id", id)
		return nil
	}
	delete(m.expanded, id)
	m.modified = true
	m.status = "Block deleted"
	if hasParent {
		m.store.SelectBlock(parent, nil)
	}
	return m.syncFromStore()
}

func (m *Model) countDescendants(id string) int {
	total := 0
	for _, child := range m.store.Order(id) {
		total += 1 + m.countDescendants(child)
	}
	return total
}

// writeDocument saves the store to the document path.
func (m *Model) writeDocument() {
	if m.documentPath == "" {
		m.status = "No document path; start with `blocks <file>` to save"
		return
	}
	if err := m.store.Save(m.documentPath); err != nil {
		m.setStatusError("Error writing document", err, "path", m.documentPath)
		return
	}
	m.modified = false
	m.rememberDocumentStamp()
	m.status = "Wrote " + m.documentPath
}
