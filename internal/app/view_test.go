package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{Store: newTestStore(t)})
	defer m.Close()
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 100 {
			t.Fatalf("line %d: expected width 100, got %d", i, w)
		}
	}
}

func TestViewShowsToolbarOnlyWithSelection(t *testing.T) {
	m := newTestModel(t)
	plain := ansi.Strip(m.View())
	if strings.Contains(plain, "↰") {
		t.Fatal("expected no toolbar without a selection")
	}
	if !strings.Contains(plain, "No selection") {
		t.Fatal("expected no-selection header")
	}

	selectBlock(t, m, "B")
	plain = ansi.Strip(m.View())
	if !strings.Contains(plain, "↰") {
		t.Fatal("expected up button for a nested selection")
	}
	if !strings.Contains(plain, "Group › Columns › Paragraph") {
		t.Fatalf("expected breadcrumb in view, got:\n%s", plain)
	}
}

func TestViewMirrorsToolbarForRTL(t *testing.T) {
	m := newTestModel(t)
	m.store.SetRTL(true)
	selectBlock(t, m, "B")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "↱") {
		t.Fatal("expected mirrored up button")
	}
	if strings.Contains(plain, "↰") {
		t.Fatal("expected no ltr glyph in rtl layout")
	}
}

func TestRenderTreeMarksFoldState(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "A")

	tree := ansi.Strip(m.renderTree(m.calculateLayout()))
	for _, want := range []string{"▾ Group", "▸ Columns", "  Paragraph tail"} {
		if !strings.Contains(tree, want) {
			t.Fatalf("expected %q in tree pane, got:\n%s", want, tree)
		}
	}
}

func TestRenderHeaderCountsInnerBlocks(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "R")
	if got := ansi.Strip(m.renderHeader()); got != "Group · 1 inner" {
		t.Fatalf("expected header with inner count, got %q", got)
	}
}

func TestFooterShowsConfirmPromptAndMetrics(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "B")
	press(t, m, runeKey('d'))

	footer := ansi.Strip(m.renderFooter(200))
	if !strings.Contains(footer, "Delete Paragraph and 0 inner blocks? (y/n)") {
		t.Fatalf("expected delete prompt in footer, got %q", footer)
	}
	if !strings.Contains(footer, "W:2 C:11 L:1") {
		t.Fatalf("expected metrics in footer, got %q", footer)
	}
}

func TestHelpToggleExpandsFooter(t *testing.T) {
	m := newTestModel(t)
	short := ansi.Strip(m.renderFooter(200))
	if strings.Contains(short, "copy path") {
		t.Fatal("expected short help to omit copy path")
	}

	press(t, m, runeKey('?'))
	full := ansi.Strip(m.renderFooter(200))
	if !strings.Contains(full, "copy path") {
		t.Fatalf("expected full help to list copy path, got %q", full)
	}
}
