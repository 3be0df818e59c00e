package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type blockMetrics struct {
	words int
	chars int
	lines int
}

// selectedTextForMetrics is the live editor buffer while editing, otherwise
// the selected block's stored content.
func (m *Model) selectedTextForMetrics() string {
	if m.mode == modeEditBlock {
		return m.editor.Value()
	}
	id, ok := m.store.SelectedBlockID()
	if !ok {
		return ""
	}
	block, _ := m.store.Block(id)
	return block.Content
}

func computeBlockMetrics(content string) blockMetrics {
	if content == "" {
		return blockMetrics{}
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return blockMetrics{
		words: len(strings.Fields(content)),
		chars: utf8.RuneCountInString(content),
		lines: lines,
	}
}

func (m *Model) blockMetricsSummary() string {
	content := m.selectedTextForMetrics()
	if strings.TrimSpace(content) == "" {
		return ""
	}
	metrics := computeBlockMetrics(content)
	return fmt.Sprintf("W:%d C:%d L:%d", metrics.words, metrics.chars, metrics.lines)
}
