// watcher.go polls the open document for changes made outside the editor.
//
// Every watch interval the document is stat'ed and its modification time and
// size compared against the last observed stamp. When they differ and the
// in-memory tree has no unsaved changes, the document is reloaded into the
// existing store so the toolbar and tree keep their references. Unsaved
// local edits always win; the user is told the file changed instead.
package app

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/treykane/cli-blocks/internal/blocks"
)

// documentWatchTickMsg is emitted by the poll timer.
type documentWatchTickMsg struct{}

// documentStamp records what the watcher compares between polls.
type documentStamp struct {
	ModNano int64
	Size    int64
}

// scheduleDocumentWatchTick queues the next poll. It returns nil when there
// is no document or watching is disabled.
func (m *Model) scheduleDocumentWatchTick() tea.Cmd {
	if m.documentPath == "" || m.watchInterval <= 0 {
		return nil
	}
	return tea.Tick(m.watchInterval, func(time.Time) tea.Msg {
		return documentWatchTickMsg{}
	})
}

func statDocument(path string) (documentStamp, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return documentStamp{}, false, nil
		}
		return documentStamp{}, false, err
	}
	return documentStamp{ModNano: info.ModTime().UnixNano(), Size: info.Size()}, true, nil
}

// rememberDocumentStamp records the current on-disk state as already seen.
// Called at startup and after every write so our own saves do not trigger
// a reload.
func (m *Model) rememberDocumentStamp() {
	if m.documentPath == "" {
		return
	}
	stamp, ok, err := statDocument(m.documentPath)
	if err != nil {
		appLog.Warn("stat document", "path", m.documentPath, "error", err)
		return
	}
	m.docStamp = stamp
	m.hasDocStamp = ok
}

// handleDocumentWatchTick compares the document against the last stamp and
// reloads it when it changed. The next poll is always scheduled.
func (m *Model) handleDocumentWatchTick(_ documentWatchTickMsg) (tea.Model, tea.Cmd) {
	stamp, ok, err := statDocument(m.documentPath)
	if err != nil {
		appLog.Warn("stat document", "path", m.documentPath, "error", err)
		return m, m.scheduleDocumentWatchTick()
	}
	if !ok || (m.hasDocStamp && stamp == m.docStamp) {
		return m, m.scheduleDocumentWatchTick()
	}

	m.docStamp = stamp
	m.hasDocStamp = true
	cmd := m.handleExternalDocumentChange()
	return m, tea.Batch(cmd, m.scheduleDocumentWatchTick())
}

// handleExternalDocumentChange reloads the document unless local edits are
// pending.
func (m *Model) handleExternalDocumentChange() tea.Cmd {
	if m.modified || m.mode != modeBrowse {
		m.status = "Document changed on disk; write with w to overwrite it"
		appLog.Info("external change ignored", "path", m.documentPath, "reason", "unsaved edits")
		return nil
	}

	loaded, err := blocks.Load(m.documentPath)
	if err != nil {
		m.setStatusError("Error reloading document", err, "path", m.documentPath)
		return nil
	}
	m.store.Replace(loaded)
	m.expanded = map[string]bool{}
	m.renderCache = map[renderKey]string{}
	m.status = "Reloaded (document changed on disk)"
	return m.syncFromStore()
}
