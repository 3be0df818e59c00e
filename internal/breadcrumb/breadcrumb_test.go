package breadcrumb

import (
	"testing"

	"github.com/treykane/cli-blocks/internal/blocks"
)

func newTestStore(t *testing.T) *blocks.Store {
	t.Helper()
	s := blocks.NewStore()
	insert := func(parent, id, name string) {
		if _, err := s.InsertBlock(parent, -1, blocks.Block{ID: id, Name: name}); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}
	insert("", "R", "core/group")
	insert("R", "A", "core/columns")
	insert("A", "B", "core/media-text")
	return s
}

func TestRenderFullChain(t *testing.T) {
	r := New(newTestStore(t))

	if got, want := r.Render("B", 80, false), "Group › Columns › Media Text"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := r.Render("R", 80, false), "Group"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderRTLReversesChain(t *testing.T) {
	r := New(newTestStore(t))

	if got, want := r.Render("B", 80, true), "Media Text ‹ Columns ‹ Group"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderCollapsesLeadingAncestors(t *testing.T) {
	r := New(newTestStore(t))

	tests := []struct {
		width int
		want  string
	}{
		{width: 28, want: "Group › Columns › Media Text"},
		{width: 27, want: "… › Columns › Media Text"},
		{width: 14, want: "… › Media Text"},
		{width: 6, want: "Media…"},
	}
	for _, tt := range tests {
		if got := r.Render("B", tt.width, false); got != tt.want {
			t.Fatalf("width %d: expected %q, got %q", tt.width, tt.want, got)
		}
	}
}

func TestRenderUnknownOrZeroWidth(t *testing.T) {
	r := New(newTestStore(t))

	if got := r.Render("missing", 80, false); got != "" {
		t.Fatalf("expected empty breadcrumb for unknown block, got %q", got)
	}
	if got := r.Render("B", 0, false); got != "" {
		t.Fatalf("expected empty breadcrumb for zero width, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"core/paragraph":  "Paragraph",
		"core/media-text": "Media Text",
		"acme/fancy_box":  "Fancy Box",
		"heading":         "Heading",
		"core/":           "Block",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q): expected %q, got %q", in, want, got)
		}
	}
}
