// Package toolbar implements the floating toolbar shown over the selected
// block: a breadcrumb of the selection's ancestry, preceded by a
// navigate-up button when the selection is nested.
//
// The toolbar is split in two. Project turns the block store's selection
// into a Snapshot. An Animator follows the snapshot's visibility flag with
// an eased value in [0,1] that drives both the fade (colours blended from
// the canvas colour) and a short vertical slide.
//
// Toolbar ties the two together for Bubble Tea. Call Sync after every
// store change and route messages through Update; while a transition runs
// the toolbar schedules its own FrameMsg ticks and stops once settled.
package toolbar

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tanema/gween/ease"
	"github.com/treykane/cli-blocks/internal/logging"
)

// SlideRows is how many terminal rows TranslationRange spans.
const SlideRows = 2

// DefaultFrameInterval paces animation frames at roughly 60 per second.
const DefaultFrameInterval = time.Second / 60

const (
	upGlyphLTR = "↰"
	upGlyphRTL = "↱"
	pipe       = " │ "
)

var toolbarLog = logging.New("toolbar")

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// BreadcrumbRenderer draws the ancestry line of a block.
type BreadcrumbRenderer interface {
	Render(id string, width int, rtl bool) string
}

// FrameMsg advances a toolbar's animation. Frames are addressed to one
// toolbar instance and one frame schedule; stale frames are ignored.
type FrameMsg struct {
	id  int
	seq int
	At  time.Time
}

// Options configures a Toolbar. Zero values select defaults.
type Options struct {
	ShowDuration  time.Duration
	HideDuration  time.Duration
	Easing        ease.TweenFunc
	FrameInterval time.Duration
	Palette       Palette
	Breadcrumb    BreadcrumbRenderer
	OnSettle      func(State)
}

// Toolbar is the floating toolbar component.
type Toolbar struct {
	id       int
	store    Selection
	selector Selector

	animator *Animator
	snapshot Snapshot
	selected bool

	breadcrumb    BreadcrumbRenderer
	palette       Palette
	frameInterval time.Duration

	ticking   bool
	seq       int
	lastFrame time.Time
	now       func() time.Time
}

// New returns a hidden toolbar reading selection state from store and
// sending navigate-up commands to selector.
func New(store Selection, selector Selector, opts Options) *Toolbar {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}
	return &Toolbar{
		id:       nextID(),
		store:    store,
		selector: selector,
		animator: NewAnimator(AnimatorOptions{
			ShowDuration: opts.ShowDuration,
			HideDuration: opts.HideDuration,
			Easing:       opts.Easing,
			OnSettle:     opts.OnSettle,
		}),
		breadcrumb:    opts.Breadcrumb,
		palette:       palette,
		frameInterval: interval,
		now:           time.Now,
	}
}

// Snapshot returns the last projected snapshot and whether a block was
// selected at the time.
func (t *Toolbar) Snapshot() (Snapshot, bool) {
	return t.snapshot, t.selected
}

// Animator exposes the visibility animator.
func (t *Toolbar) Animator() *Animator {
	return t.animator
}

// Sync re-projects the store. When the visibility flag changed it starts a
// transition and returns the command that drives its frames. Without a
// selection the flag reads as false.
func (t *Toolbar) Sync() tea.Cmd {
	t.snapshot, t.selected = Project(t.store)
	visible := t.selected && t.snapshot.Visible

	if !t.animator.SetVisible(visible) {
		return nil
	}
	toolbarLog.Debug("toolbar transition", "visible", visible, "from", t.animator.Value(), "selected", t.snapshot.SelectedID)

	t.lastFrame = t.now()
	if t.ticking {
		return nil
	}
	t.ticking = true
	t.seq++
	return t.tick()
}

func (t *Toolbar) tick() tea.Cmd {
	id, seq := t.id, t.seq
	return tea.Tick(t.frameInterval, func(at time.Time) tea.Msg {
		return FrameMsg{id: id, seq: seq, At: at}
	})
}

// Update handles frames addressed to this toolbar.
func (t *Toolbar) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != t.id || frame.seq != t.seq || !t.ticking {
		return nil
	}

	dt := frame.At.Sub(t.lastFrame)
	if dt < 0 {
		dt = 0
	}
	t.lastFrame = frame.At
	t.animator.Advance(dt)

	if t.animator.Animating() {
		return t.tick()
	}
	t.ticking = false
	return nil
}

// Animating reports whether frames are being scheduled.
func (t *Toolbar) Animating() bool {
	return t.ticking
}

// Close abandons any running transition. Pending frames are dropped.
func (t *Toolbar) Close() {
	t.animator.Stop()
	t.ticking = false
	t.seq++
}

// NavigateUp selects the parent of the current selection. It does nothing
// and reports false when the selection is top-level or absent.
func (t *Toolbar) NavigateUp(initialPosition *int) bool {
	if !t.selected || !t.snapshot.HasParent || t.selector == nil {
		return false
	}
	toolbarLog.Debug("navigate up", "from", t.snapshot.SelectedID, "to", t.snapshot.ParentID)
	t.selector.SelectBlock(t.snapshot.ParentID, initialPosition)
	return true
}

// OffsetRows converts the current offset into whole terminal rows.
func (t *Toolbar) OffsetRows() int {
	return offsetRows(t.animator.Offset())
}

func offsetRows(offset float64) int {
	rows := int(math.Round(offset / TranslationRange * SlideRows))
	return max(0, min(SlideRows, rows))
}

// Height is the number of lines View returns when a block is selected.
func (t *Toolbar) Height() int {
	return SlideRows + 1
}

// barLayout is the horizontal arrangement of the bar for a given width.
type barLayout struct {
	segments []barSegment
	width    int
	upStart  int
	upEnd    int
}

type segmentKind int

const (
	segmentPadding segmentKind = iota
	segmentButton
	segmentPipe
	segmentCrumb
)

type barSegment struct {
	kind segmentKind
	text string
}

func (t *Toolbar) layout(width int) barLayout {
	l := barLayout{upStart: -1, upEnd: -1}
	if !t.selected || width <= 2 {
		return l
	}

	inner := width - 2
	var button []barSegment
	if t.snapshot.HasParent {
		glyph := upGlyphLTR
		if t.snapshot.IsRTL {
			glyph = upGlyphRTL
		}
		button = []barSegment{{kind: segmentButton, text: glyph}, {kind: segmentPipe, text: pipe}}
		inner -= runewidth.StringWidth(glyph) + runewidth.StringWidth(pipe)
	}

	crumb := t.snapshot.SelectedID
	if t.breadcrumb != nil {
		crumb = t.breadcrumb.Render(t.snapshot.SelectedID, max(0, inner), t.snapshot.IsRTL)
	} else {
		crumb = runewidth.Truncate(crumb, max(0, inner), "…")
	}

	content := append([]barSegment{}, button...)
	content = append(content, barSegment{kind: segmentCrumb, text: crumb})
	if t.snapshot.IsRTL {
		for i, j := 0, len(content)-1; i < j; i, j = i+1, j-1 {
			content[i], content[j] = content[j], content[i]
		}
	}

	l.segments = append(l.segments, barSegment{kind: segmentPadding, text: " "})
	l.segments = append(l.segments, content...)
	l.segments = append(l.segments, barSegment{kind: segmentPadding, text: " "})

	col := 0
	for _, seg := range l.segments {
		w := runewidth.StringWidth(seg.text)
		if seg.kind == segmentButton {
			l.upStart, l.upEnd = col, col+w
		}
		col += w
	}
	l.width = col
	return l
}

// BarOrigin returns the column at which the bar starts inside a slot of
// the given width. LTR bars hug the left edge, RTL bars the right edge.
func (t *Toolbar) BarOrigin(width int) int {
	l := t.layout(width)
	if t.snapshot.IsRTL {
		return max(0, width-l.width)
	}
	return 0
}

// HitUpButton reports whether column x (relative to the slot rendered by
// View with the same width) lands on the navigate-up button.
func (t *Toolbar) HitUpButton(x, width int) bool {
	l := t.layout(width)
	if l.upStart < 0 {
		return false
	}
	origin := t.BarOrigin(width)
	return x >= origin+l.upStart && x < origin+l.upEnd
}

// View renders the toolbar slot: Height lines, with the bar pushed down by
// the current offset and faded by the current value. Nothing is rendered
// when no block is selected.
func (t *Toolbar) View(width int) string {
	if !t.selected || width <= 0 {
		return ""
	}

	l := t.layout(width)
	colors := t.palette.At(t.animator.Value())

	var bar strings.Builder
	for _, seg := range l.segments {
		style := lipgloss.NewStyle().Background(lipgloss.Color(colors.Background))
		switch seg.kind {
		case segmentButton:
			style = style.Foreground(lipgloss.Color(colors.Accent)).Bold(true)
		case segmentPipe:
			style = style.Foreground(lipgloss.Color(colors.Muted))
		default:
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}
		bar.WriteString(style.Render(seg.text))
	}

	line := bar.String()
	if t.snapshot.IsRTL {
		line = strings.Repeat(" ", max(0, width-l.width)) + line
	}

	rows := make([]string, t.Height())
	rows[t.OffsetRows()] = line
	return strings.Join(rows, "\n")
}
