package toolbar

import "github.com/treykane/cli-blocks/internal/blocks"

// Selection is the read side of the block store the toolbar projects from.
type Selection interface {
	SelectedBlockID() (string, bool)
	HierarchyRootID(id string) string
	ParentID(id string) (string, bool)
	BlockCount(id string) int
	Settings() blocks.Settings
}

// Selector is the write side used by the navigate-up affordance.
type Selector interface {
	SelectBlock(id string, initialPosition *int)
}

// Snapshot is everything the toolbar needs to draw one frame.
type Snapshot struct {
	SelectedID string
	// ParentID is meaningful only when HasParent is set.
	ParentID  string
	HasParent bool
	Visible   bool
	IsRTL     bool
}

// Project derives a Snapshot from the store. It reports false when no block
// is selected, in which case nothing is drawn.
//
// The toolbar is visible when the hierarchy root of the selection holds at
// least one inner block, so selecting an empty top-level block hides it.
func Project(s Selection) (Snapshot, bool) {
	selected, ok := s.SelectedBlockID()
	if !ok {
		return Snapshot{}, false
	}

	root := s.HierarchyRootID(selected)
	parent, hasParent := s.ParentID(selected)

	return Snapshot{
		SelectedID: selected,
		ParentID:   parent,
		HasParent:  hasParent,
		Visible:    s.BlockCount(root) > 0,
		IsRTL:      s.Settings().IsRTL,
	}, true
}
