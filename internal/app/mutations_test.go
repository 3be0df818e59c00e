package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/config"
)

func TestWriteDocumentSavesAndClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.toml")
	m := newTestModelWithOptions(t, Options{Store: newTestStore(t), DocumentPath: path, Config: config.Default()})
	selectBlock(t, m, "B")
	press(t, m, runeKey('t'))

	press(t, m, runeKey('w'))
	if m.Modified() {
		t.Fatal("expected modified flag to be cleared")
	}
	if m.status != "Wrote "+path {
		t.Fatalf("unexpected status %q", m.status)
	}

	loaded, err := blocks.Load(path)
	if err != nil {
		t.Fatalf("load written document: %v", err)
	}
	if !loaded.Settings().IsRTL {
		t.Fatal("expected rtl to be written")
	}
	if loaded.Len() != 4 {
		t.Fatalf("expected 4 blocks, got %d", loaded.Len())
	}
}

func TestWriteDocumentWithoutPath(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runeKey('w'))
	if !strings.HasPrefix(m.status, "No document path") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestWriteDocumentReportsErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	// The parent of the document is a regular file, so the save must fail.
	path := filepath.Join(blocker, "doc.toml")
	m := newTestModelWithOptions(t, Options{Store: newTestStore(t), DocumentPath: path, Config: config.Default()})
	m.modified = true

	press(t, m, runeKey('w'))
	if m.status != "Error writing document" {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if !m.Modified() {
		t.Fatal("expected modified flag to remain set")
	}
}

func TestCountDescendants(t *testing.T) {
	m := newTestModel(t)
	if got := m.countDescendants("R"); got != 2 {
		t.Fatalf("expected 2 descendants of R, got %d", got)
	}
	if got := m.countDescendants("E"); got != 0 {
		t.Fatalf("expected 0 descendants of E, got %d", got)
	}
}

func TestDeleteTopLevelClearsSelection(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "E")

	press(t, m, runeKey('d'))
	press(t, m, runeKey('y'))
	if _, ok := m.store.SelectedBlockID(); ok {
		t.Fatal("expected no selection after deleting a top-level block")
	}
	if len(m.rows) != 1 {
		t.Fatalf("expected 1 row left, got %d", len(m.rows))
	}
}
