package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// startEditBlock opens the selected block in the editor. The caret lands
// where the selection asked for: 0 is the start, anything else (including
// no preference) the end.
func (m *Model) startEditBlock() tea.Cmd {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.status = "Select a block to edit"
		return nil
	}
	block, _ := m.store.Block(id)

	m.mode = modeEditBlock
	m.updateLayout()
	m.editor.SetValue(block.Content)
	if pos := m.store.InitialPosition(); pos != nil && *pos == 0 {
		m.moveEditorToStart()
	}
	m.status = "Editing " + block.Name
	return m.editor.Focus()
}

// moveEditorToStart puts the caret at the first column of the first line.
func (m *Model) moveEditorToStart() {
	for i := 0; i < m.editor.LineCount(); i++ {
		m.editor.CursorUp()
	}
	m.editor.CursorStart()
}

// handleEditKey processes keys while editing block content.
func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m, m.saveEdit()
	case "esc":
		m.stopEditing()
		m.status = "Edit cancelled"
		return m, nil
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
}

// saveEdit writes the editor content back into the selected block.
func (m *Model) saveEdit() tea.Cmd {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.stopEditing()
		return nil
	}
	if err := m.store.UpdateContent(id, m.editor.Value()); err != nil {
		m.setStatusError("Error saving block", err, "id", id)
		m.stopEditing()
		return nil
	}
	m.modified = true
	m.stopEditing()
	m.status = "Block updated"
	return m.syncFromStore()
}

func (m *Model) stopEditing() {
	m.editor.Blur()
	m.mode = modeBrowse
	m.updateLayout()
}
