package blocks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// document is the on-disk TOML shape of a block tree.
//
//	rtl = false
//
//	[[blocks]]
//	name = "core/group"
//
//	  [[blocks.inner]]
//	  name = "core/paragraph"
//	  content = "Hello"
//
// Block ids are runtime identities and are not persisted; Decode assigns
// fresh ones.
type document struct {
	RTL    bool            `toml:"rtl"`
	Blocks []documentBlock `toml:"blocks"`
}

type documentBlock struct {
	Name    string          `toml:"name"`
	Content string          `toml:"content,omitempty"`
	Inner   []documentBlock `toml:"inner,omitempty"`
}

// Decode reads a TOML document into a new Store.
func Decode(r io.Reader) (*Store, error) {
	var doc document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		storeLog.Warn("ignoring unknown document keys", "keys", strings.Join(keys, ","))
	}

	s := NewStore()
	s.settings.IsRTL = doc.RTL
	if err := s.insertDocumentBlocks("", doc.Blocks, "blocks"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) insertDocumentBlocks(parentID string, blocks []documentBlock, path string) error {
	for i, db := range blocks {
		where := fmt.Sprintf("%s[%d]", path, i)
		if strings.TrimSpace(db.Name) == "" {
			return fmt.Errorf("%s: name is required: %w", where, ErrInvalidDocument)
		}
		id, err := s.InsertBlock(parentID, -1, Block{Name: strings.TrimSpace(db.Name), Content: db.Content})
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if err := s.insertDocumentBlocks(id, db.Inner, where+".inner"); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the store as a TOML document. Selection is not persisted.
func (s *Store) Encode(w io.Writer) error {
	doc := document{
		RTL:    s.settings.IsRTL,
		Blocks: s.documentBlocks(""),
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

func (s *Store) documentBlocks(parentID string) []documentBlock {
	ids := s.order[parentID]
	if len(ids) == 0 {
		return nil
	}
	out := make([]documentBlock, 0, len(ids))
	for _, id := range ids {
		b := s.blocks[id]
		out = append(out, documentBlock{
			Name:    b.Name,
			Content: b.Content,
			Inner:   s.documentBlocks(id),
		})
	}
	return out
}

// Load reads the document at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	storeLog.Info("loaded document", "path", path, "blocks", s.Len())
	return s, nil
}

// Save writes the store to path, creating parent directories as needed.
// The file is replaced atomically via a temporary sibling.
func (s *Store) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".blocks-*.toml")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(buf.Bytes())
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write document %q: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace document %q: %w", path, err)
	}
	storeLog.Info("saved document", "path", path, "blocks", s.Len())
	return nil
}
