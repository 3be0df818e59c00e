// Package breadcrumb renders the ancestry chain of a block as a single line,
// e.g. "Group › Columns › Paragraph".
package breadcrumb

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/treykane/cli-blocks/internal/blocks"
)

const (
	separatorLTR = " › "
	separatorRTL = " ‹ "
	ellipsis     = "…"
)

// Hierarchy is the part of the block store the breadcrumb reads.
type Hierarchy interface {
	Ancestors(id string) []string
	Block(id string) (blocks.Block, bool)
}

// Renderer turns block ids into breadcrumb lines.
type Renderer struct {
	source Hierarchy
}

// New returns a Renderer reading from source.
func New(source Hierarchy) *Renderer {
	return &Renderer{source: source}
}

// Render returns the chain from the hierarchy root to id, fitted to width
// columns. Leading ancestors collapse into an ellipsis first; the block
// itself is always shown, truncated only when it cannot fit on its own.
// With rtl the chain reads right to left. Unknown ids render as "".
func (r *Renderer) Render(id string, width int, rtl bool) string {
	if width <= 0 {
		return ""
	}
	chain := r.source.Ancestors(id)
	if len(chain) == 0 {
		return ""
	}

	titles := make([]string, 0, len(chain))
	for _, ancestor := range chain {
		b, ok := r.source.Block(ancestor)
		if !ok {
			continue
		}
		titles = append(titles, Title(b.Name))
	}
	if len(titles) == 0 {
		return ""
	}

	for start := 0; start < len(titles); start++ {
		parts := titles[start:]
		if start > 0 {
			parts = append([]string{ellipsis}, parts...)
		}
		line := join(parts, rtl)
		if runewidth.StringWidth(line) <= width {
			return line
		}
	}

	return runewidth.Truncate(titles[len(titles)-1], width, ellipsis)
}

func join(parts []string, rtl bool) string {
	if !rtl {
		return strings.Join(parts, separatorLTR)
	}
	reversed := make([]string, len(parts))
	for i, part := range parts {
		reversed[len(parts)-1-i] = part
	}
	return strings.Join(reversed, separatorRTL)
}

// Title converts a block name such as "core/media-text" into "Media Text".
func Title(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return "Block"
	}
	return strings.Join(words, " ")
}
