// Package blocks holds the in-memory block tree edited by cli-blocks.
//
// A document is an ordered forest of blocks. Each block may contain inner
// blocks, so the structure nests arbitrarily. The Store keeps three indexes
// over that forest: blocks by id, child order per parent, and parent per
// block. Top-level blocks live under the empty parent id.
//
// Besides structure, the Store owns the editor selection (at most one
// selected block plus the caret position requested when it was selected) and
// the layout settings. Every mutation bumps Version so views can cheaply
// detect that something changed.
//
// A Store is not safe for concurrent use. It is owned by the Bubble Tea
// update loop and only touched from there.
package blocks

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/treykane/cli-blocks/internal/logging"
)

var (
	// ErrBlockNotFound is returned by commands given an unknown block id.
	ErrBlockNotFound = errors.New("block not found")

	// ErrInvalidDocument is returned when a document cannot form a tree.
	ErrInvalidDocument = errors.New("invalid document")
)

var storeLog = logging.New("blocks")

// Block is a single node of the document.
type Block struct {
	ID      string
	Name    string
	Content string
}

// Settings are editor-wide layout settings.
type Settings struct {
	IsRTL bool
}

// Row is one line of the flattened tree listing.
type Row struct {
	ID          string
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Store is the block tree plus selection state.
type Store struct {
	blocks  map[string]*Block
	order   map[string][]string
	parents map[string]string

	selected        string
	initialPosition *int

	settings Settings
	version  uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		blocks:  map[string]*Block{},
		order:   map[string][]string{},
		parents: map[string]string{},
	}
}

// Version increases on every mutation.
func (s *Store) Version() uint64 {
	return s.version
}

func (s *Store) touch() {
	s.version++
}

// Len returns the total number of blocks.
func (s *Store) Len() int {
	return len(s.blocks)
}

// Block returns a copy of the block with the given id.
func (s *Store) Block(id string) (Block, bool) {
	b, ok := s.blocks[id]
	if !ok {
		return Block{}, false
	}
	return *b, true
}

// Order returns the ids of the inner blocks of parentID, in document order.
// The empty parent id lists top-level blocks.
func (s *Store) Order(parentID string) []string {
	ids := s.order[parentID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// BlockCount returns how many inner blocks parentID has. The empty parent
// id counts top-level blocks. Unknown ids count zero.
func (s *Store) BlockCount(parentID string) int {
	return len(s.order[parentID])
}

// ParentID returns the immediate parent of id. Top-level and unknown blocks
// have no parent.
func (s *Store) ParentID(id string) (string, bool) {
	parent, ok := s.parents[id]
	if !ok || parent == "" {
		return "", false
	}
	return parent, true
}

// HierarchyRootID returns the top-level block containing id. A top-level
// block is its own root. Unknown ids are returned unchanged.
func (s *Store) HierarchyRootID(id string) string {
	current := id
	for {
		parent, ok := s.ParentID(current)
		if !ok {
			return current
		}
		current = parent
	}
}

// Ancestors returns the chain from the hierarchy root down to id, inclusive.
// Unknown ids yield nil.
func (s *Store) Ancestors(id string) []string {
	if _, ok := s.blocks[id]; !ok {
		return nil
	}
	var chain []string
	for current := id; ; {
		chain = append(chain, current)
		parent, ok := s.ParentID(current)
		if !ok {
			break
		}
		current = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Depth returns how many ancestors id has.
func (s *Store) Depth(id string) int {
	return max(0, len(s.Ancestors(id))-1)
}

// Settings returns the layout settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// SetRTL switches the layout direction.
func (s *Store) SetRTL(rtl bool) {
	if s.settings.IsRTL == rtl {
		return
	}
	s.settings.IsRTL = rtl
	s.touch()
}

// SelectedBlockID returns the selected block, if any.
func (s *Store) SelectedBlockID() (string, bool) {
	if s.selected == "" {
		return "", false
	}
	return s.selected, true
}

// InitialPosition returns the caret position requested by the last
// SelectBlock call, or nil when none was given.
func (s *Store) InitialPosition() *int {
	if s.initialPosition == nil {
		return nil
	}
	pos := *s.initialPosition
	return &pos
}

// SelectBlock makes id the selected block. initialPosition, when non-nil,
// records where a caret should land in the block's content; -1 means the
// end. Unknown ids leave the selection untouched.
func (s *Store) SelectBlock(id string, initialPosition *int) {
	if _, ok := s.blocks[id]; !ok {
		storeLog.Warn("select unknown block", "id", id)
		return
	}
	s.selected = id
	s.initialPosition = nil
	if initialPosition != nil {
		pos := *initialPosition
		s.initialPosition = &pos
	}
	s.touch()
	storeLog.Debug("selected block", "id", id)
}

// ClearSelection deselects the current block.
func (s *Store) ClearSelection() {
	if s.selected == "" {
		return
	}
	s.selected = ""
	s.initialPosition = nil
	s.touch()
}

// InsertBlock adds b as an inner block of parentID at index. A negative or
// out-of-range index appends. A fresh id is assigned when b.ID is empty.
func (s *Store) InsertBlock(parentID string, index int, b Block) (string, error) {
	if parentID != "" {
		if _, ok := s.blocks[parentID]; !ok {
			return "", fmt.Errorf("insert into %q: %w", parentID, ErrBlockNotFound)
		}
	}
	if b.Name == "" {
		return "", fmt.Errorf("insert block: name is required: %w", ErrInvalidDocument)
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, exists := s.blocks[b.ID]; exists {
		return "", fmt.Errorf("insert block %q: duplicate id: %w", b.ID, ErrInvalidDocument)
	}

	block := b
	s.blocks[b.ID] = &block
	s.parents[b.ID] = parentID

	siblings := s.order[parentID]
	if index < 0 || index > len(siblings) {
		index = len(siblings)
	}
	siblings = append(siblings, "")
	copy(siblings[index+1:], siblings[index:])
	siblings[index] = b.ID
	s.order[parentID] = siblings

	s.touch()
	return b.ID, nil
}

// RemoveBlock deletes id and all of its inner blocks. When the selection
// was inside the removed subtree it is cleared.
func (s *Store) RemoveBlock(id string) error {
	if _, ok := s.blocks[id]; !ok {
		return fmt.Errorf("remove %q: %w", id, ErrBlockNotFound)
	}

	parent := s.parents[id]
	siblings := s.order[parent]
	for i, sibling := range siblings {
		if sibling == id {
			s.order[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	if len(s.order[parent]) == 0 {
		delete(s.order, parent)
	}

	s.removeSubtree(id)
	s.touch()
	return nil
}

func (s *Store) removeSubtree(id string) {
	for _, child := range s.order[id] {
		s.removeSubtree(child)
	}
	delete(s.order, id)
	delete(s.parents, id)
	delete(s.blocks, id)
	if s.selected == id {
		s.selected = ""
		s.initialPosition = nil
	}
}

// UpdateContent replaces the content of id.
func (s *Store) UpdateContent(id, content string) error {
	b, ok := s.blocks[id]
	if !ok {
		return fmt.Errorf("update %q: %w", id, ErrBlockNotFound)
	}
	if b.Content == content {
		return nil
	}
	b.Content = content
	s.touch()
	return nil
}

// Rows flattens the tree depth-first. Inner blocks are listed only for
// blocks marked in expanded.
func (s *Store) Rows(expanded map[string]bool) []Row {
	rows := []Row{}
	s.walkRows("", 0, expanded, &rows)
	return rows
}

func (s *Store) walkRows(parentID string, depth int, expanded map[string]bool, rows *[]Row) {
	for _, id := range s.order[parentID] {
		hasChildren := len(s.order[id]) > 0
		open := hasChildren && expanded[id]
		*rows = append(*rows, Row{ID: id, Depth: depth, HasChildren: hasChildren, Expanded: open})
		if open {
			s.walkRows(id, depth+1, expanded, rows)
		}
	}
}

// Replace swaps in the tree and settings of other, keeping s as the
// instance views hold on to. The selection is carried over by position:
// when other has a block at the same index path it becomes selected,
// otherwise the selection is cleared.
func (s *Store) Replace(other *Store) {
	path := s.IndexPath(s.selected)

	s.blocks = other.blocks
	s.order = other.order
	s.parents = other.parents
	s.settings = other.settings
	s.selected = ""
	s.initialPosition = nil
	if id, ok := s.BlockAtPath(path); ok {
		s.selected = id
	}
	s.touch()
}

// IndexPath returns the sibling index of id and each of its ancestors,
// root first. Unknown ids return nil.
func (s *Store) IndexPath(id string) []int {
	chain := s.Ancestors(id)
	if len(chain) == 0 {
		return nil
	}
	path := make([]int, 0, len(chain))
	parent := ""
	for _, current := range chain {
		path = append(path, slices.Index(s.order[parent], current))
		parent = current
	}
	return path
}

// BlockAtPath resolves an index path produced by IndexPath.
func (s *Store) BlockAtPath(path []int) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	id := ""
	for _, i := range path {
		siblings := s.order[id]
		if i < 0 || i >= len(siblings) {
			return "", false
		}
		id = siblings[i]
	}
	return id, true
}
