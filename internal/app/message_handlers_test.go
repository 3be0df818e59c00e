package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestClickOnToolbarUpButtonNavigatesUp(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "B")

	layout := m.calculateLayout()
	row := layout.ToolbarTop + m.toolbar.OffsetRows()

	// Column 1 of the bar is the up glyph; column 0 is padding.
	m.Update(leftClick(layout.InnerLeft, row))
	if got := mustSelected(t, m); got != "B" {
		t.Fatalf("expected padding click to be ignored, got %s", got)
	}

	m.Update(leftClick(layout.InnerLeft+1, row))
	if got := mustSelected(t, m); got != "A" {
		t.Fatalf("expected click to select parent A, got %s", got)
	}
}

func TestClickOnToolbarRowFollowsSlide(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "B")

	layout := m.calculateLayout()
	wrongRow := layout.ToolbarTop + m.toolbar.OffsetRows() - 1

	m.Update(leftClick(layout.InnerLeft+1, wrongRow))
	if got := mustSelected(t, m); got != "B" {
		t.Fatalf("expected click above the bar to miss, got %s", got)
	}
}

func TestClickOnTreeRowSelectsBlock(t *testing.T) {
	m := newTestModel(t)

	// Row 0 is the top border, row 1 the pane title, row 2 the first block.
	m.Update(leftClick(2, 3))
	if got := mustSelected(t, m); got != "E" {
		t.Fatalf("expected click on second row to select E, got %s", got)
	}

	m.Update(leftClick(2, 10))
	if got := mustSelected(t, m); got != "E" {
		t.Fatalf("expected click below the rows to be ignored, got %s", got)
	}
}

func TestMouseIgnoredWhileEditing(t *testing.T) {
	m := newTestModel(t)
	selectBlock(t, m, "B")
	press(t, m, runeKey('e'))

	m.Update(leftClick(2, 2))
	if got := mustSelected(t, m); got != "B" {
		t.Fatalf("expected selection to stay on B while editing, got %s", got)
	}
}

func TestNonLeftClicksAreIgnored(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if _, ok := m.store.SelectedBlockID(); ok {
		t.Fatal("expected right click to be ignored")
	}
}

func TestWindowResizeSizesWidgets(t *testing.T) {
	m := newTestModel(t)
	layout := m.calculateLayout()
	if m.viewport.Width != layout.ViewportWidth || m.viewport.Height != layout.ViewportHeight {
		t.Fatalf("expected viewport %dx%d, got %dx%d", layout.ViewportWidth, layout.ViewportHeight, m.viewport.Width, m.viewport.Height)
	}
	if layout.LeftWidth+layout.RightWidth != 100 {
		t.Fatalf("expected panes to fill the width, got %d+%d", layout.LeftWidth, layout.RightWidth)
	}
	if layout.ViewportHeight+HeaderRows+m.toolbar.Height()+previewPane.GetVerticalFrameSize() != layout.ContentHeight {
		t.Fatalf("expected right pane rows to add up to %d", layout.ContentHeight)
	}
}
