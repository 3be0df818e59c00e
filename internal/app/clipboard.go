package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/treykane/cli-blocks/internal/breadcrumb"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copySelectedContentToClipboard copies the raw markdown of the selected
// block. In edit mode the live editor buffer is used instead.
func (m *Model) copySelectedContentToClipboard() {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.status = "No block selected"
		return
	}
	block, _ := m.store.Block(id)
	content := block.Content
	if m.mode == modeEditBlock {
		content = m.editor.Value()
	}
	if content == "" {
		m.status = "Block has no content to copy"
		return
	}
	if err := writeClipboard(content); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = fmt.Sprintf("Copied block content (%d chars)", len([]rune(content)))
}

// copySelectedPathToClipboard copies the selection's ancestry as plain
// text, root first, e.g. "Group / Columns / Paragraph".
func (m *Model) copySelectedPathToClipboard() {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.status = "No block selected"
		return
	}
	chain := m.store.Ancestors(id)
	titles := make([]string, 0, len(chain))
	for _, ancestor := range chain {
		block, _ := m.store.Block(ancestor)
		titles = append(titles, breadcrumb.Title(block.Name))
	}
	path := strings.Join(titles, " / ")
	if err := writeClipboard(path); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = "Copied block path: " + path
}
