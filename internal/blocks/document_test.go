package blocks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeBuildsNestedTree(t *testing.T) {
	s, err := Decode(strings.NewReader(`
rtl = true

[[blocks]]
name = "core/group"

  [[blocks.inner]]
  name = "core/paragraph"
  content = "inside"

[[blocks]]
name = "core/heading"
content = "# Title"
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !s.Settings().IsRTL {
		t.Fatal("expected rtl setting from document")
	}
	top := s.Order("")
	if len(top) != 2 {
		t.Fatalf("expected 2 top-level blocks, got %d", len(top))
	}
	group, _ := s.Block(top[0])
	if group.Name != "core/group" {
		t.Fatalf("expected core/group first, got %q", group.Name)
	}
	inner := s.Order(top[0])
	if len(inner) != 1 {
		t.Fatalf("expected 1 inner block, got %d", len(inner))
	}
	para, _ := s.Block(inner[0])
	if para.Content != "inside" {
		t.Fatalf("expected content %q, got %q", "inside", para.Content)
	}
	if root := s.HierarchyRootID(inner[0]); root != top[0] {
		t.Fatalf("expected root %q, got %q", top[0], root)
	}
}

func TestDecodeRejectsNamelessBlock(t *testing.T) {
	_, err := Decode(strings.NewReader(`
[[blocks]]
name = "core/group"

  [[blocks.inner]]
  content = "no name"
`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	if !strings.Contains(err.Error(), "blocks[0].inner[0]") {
		t.Fatalf("expected error to locate the block, got %v", err)
	}
}

func TestDecodeRejectsMalformedTOML(t *testing.T) {
	_, err := Decode(strings.NewReader(`[[blocks]`))
	if err == nil || !strings.Contains(err.Error(), "parse document") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestEncodeDecodePreservesStructure(t *testing.T) {
	s := Sample()

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if outline(s, "") != outline(again, "") {
		t.Fatalf("expected identical outline\nbefore:\n%s\nafter:\n%s", outline(s, ""), outline(again, ""))
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.toml")
	s := Sample()
	s.SetRTL(true)

	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != s.Len() {
		t.Fatalf("expected %d blocks, got %d", s.Len(), loaded.Len())
	}
	if !loaded.Settings().IsRTL {
		t.Fatal("expected rtl to persist")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the document in the directory, got %d entries", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestSampleHasEmptyTopLevelGroup(t *testing.T) {
	s := Sample()
	empty := 0
	for _, id := range s.Order("") {
		b, _ := s.Block(id)
		if b.Name == "core/group" && s.BlockCount(id) == 0 {
			empty++
		}
	}
	if empty != 1 {
		t.Fatalf("expected one empty top-level group in the sample, got %d", empty)
	}
}

func outline(s *Store, parent string) string {
	var b strings.Builder
	for _, id := range s.Order(parent) {
		block, _ := s.Block(id)
		b.WriteString(strings.Repeat("  ", s.Depth(id)))
		b.WriteString(block.Name + "|" + block.Content + "\n")
		b.WriteString(outline(s, id))
	}
	return b.String()
}
