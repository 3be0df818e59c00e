// render.go implements debounced, cached markdown rendering of the selected
// block's content for the preview pane.
//
// Moving through the tree changes the selection on every key press, so
// requestPreview bumps a sequence number and schedules the real render after
// PreviewDebounce. Stale requests and results carry an old sequence number
// and are dropped. Completed renders are cached by block id, width bucket
// and content, so returning to a block or resizing within a bucket is free.
//
// Glamour TermRenderer instances are cached per width bucket behind a mutex
// because renders run on Bubble Tea's command goroutines. The style comes
// from CLI_BLOCKS_GLAMOUR_STYLE or GLAMOUR_STYLE and defaults to "dark".
package app

import (
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const (
	emptyPreview = "Select a block to preview it"
	emptyBlock   = "Empty block"
)

// renderKey identifies one cached preview.
type renderKey struct {
	id      string
	width   int
	content string
}

// renderRequestMsg is emitted by the debounce timer.
type renderRequestMsg struct {
	key renderKey
	seq int
}

// renderResultMsg carries a finished render back to Update.
type renderResultMsg struct {
	key     renderKey
	seq     int
	content string
	err     error
}

var (
	rendererCacheMu sync.Mutex
	rendererCache   = map[int]*glamour.TermRenderer{}
)

// requestPreview shows the selected block in the preview pane, from cache
// when possible and otherwise via a debounced render.
func (m *Model) requestPreview() tea.Cmd {
	id, ok := m.store.SelectedBlockID()
	if !ok {
		m.previewKey = renderKey{}
		m.viewport.SetContent(mutedStyle.Render(emptyPreview))
		return nil
	}
	block, _ := m.store.Block(id)
	if strings.TrimSpace(block.Content) == "" {
		m.previewKey = renderKey{id: id}
		m.viewport.SetContent(mutedStyle.Render(emptyBlock))
		return nil
	}

	key := renderKey{id: id, width: roundWidthToNearestBucket(m.viewport.Width), content: block.Content}
	if key == m.previewKey {
		return nil
	}
	m.previewKey = key
	if cached, ok := m.renderCache[key]; ok {
		m.viewport.SetContent(cached)
		m.viewport.GotoTop()
		return nil
	}

	m.renderSeq++
	seq := m.renderSeq
	return tea.Tick(PreviewDebounce, func(time.Time) tea.Msg {
		return renderRequestMsg{key: key, seq: seq}
	})
}

// handleRenderRequest starts the render if the request is still current.
func (m *Model) handleRenderRequest(msg renderRequestMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.renderSeq || msg.key != m.previewKey {
		return m, nil
	}
	return m, renderMarkdownCmd(msg.key, msg.seq)
}

// handleRenderResult caches the render and shows it if still current.
func (m *Model) handleRenderResult(msg renderResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		appLog.Error("render block preview", "id", msg.key.id, "seq", msg.seq, "error", msg.err)
		if msg.seq == m.renderSeq {
			m.viewport.SetContent(msg.key.content)
			m.status = "Preview rendered as plain text"
		}
		return m, nil
	}

	if len(m.renderCache) >= MaxRenderCacheEntries {
		m.renderCache = map[renderKey]string{}
	}
	m.renderCache[msg.key] = msg.content

	if msg.seq != m.renderSeq || msg.key != m.previewKey {
		return m, nil
	}
	m.viewport.SetContent(msg.content)
	m.viewport.GotoTop()
	return m, nil
}

// renderMarkdownCmd renders on a command goroutine.
func renderMarkdownCmd(key renderKey, seq int) tea.Cmd {
	return func() tea.Msg {
		out, err := renderMarkdown(key.content, key.width)
		return renderResultMsg{key: key, seq: seq, content: out, err: err}
	}
}

// renderMarkdown converts block content to ANSI output for the viewport.
func renderMarkdown(content string, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return content, err
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content, err
	}
	return strings.TrimRight(out, "\n"), nil
}

// getRenderer returns a cached Glamour renderer wrapping at width.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	return renderer, nil
}

// glamourStyleOption resolves the Glamour style. "auto" queries the
// terminal background; other values must be dark, light or notty.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("CLI_BLOCKS_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	switch style {
	case "auto":
		return glamour.WithAutoStyle()
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
