package toolbar

import "github.com/treykane/cli-blocks/internal/blocks"

// fakeStore is a hand-wired selection store keyed by parent links.
type fakeStore struct {
	selected string
	parents  map[string]string
	counts   map[string]int
	rtl      bool

	selectCalls []selectCall
}

type selectCall struct {
	id       string
	position *int
}

func (f *fakeStore) SelectedBlockID() (string, bool) {
	return f.selected, f.selected != ""
}

func (f *fakeStore) HierarchyRootID(id string) string {
	for {
		parent, ok := f.parents[id]
		if !ok {
			return id
		}
		id = parent
	}
}

func (f *fakeStore) ParentID(id string) (string, bool) {
	parent, ok := f.parents[id]
	return parent, ok
}

func (f *fakeStore) BlockCount(id string) int {
	return f.counts[id]
}

func (f *fakeStore) Settings() blocks.Settings {
	return blocks.Settings{IsRTL: f.rtl}
}

func (f *fakeStore) SelectBlock(id string, position *int) {
	f.selectCalls = append(f.selectCalls, selectCall{id: id, position: position})
	f.selected = id
}

// nestedStore models R > A > B with R holding three blocks.
func nestedStore() *fakeStore {
	return &fakeStore{
		selected: "B",
		parents:  map[string]string{"B": "A", "A": "R"},
		counts:   map[string]int{"R": 3, "A": 1},
	}
}

type fakeBreadcrumb struct{}

func (fakeBreadcrumb) Render(id string, width int, rtl bool) string {
	if rtl {
		return id + ":crumb"
	}
	return "crumb:" + id
}
