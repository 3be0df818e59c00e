package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/breadcrumb"
	"github.com/treykane/cli-blocks/internal/config"
	"github.com/treykane/cli-blocks/internal/toolbar"
)

// mode controls the UI state and which input widget is active.
type mode int

const (
	modeBrowse mode = iota
	modeEditBlock
	modeConfirmDelete
)

// Options configures a new Model.
type Options struct {
	// Store is the document being edited. Required.
	Store *blocks.Store
	// DocumentPath is where the write action saves. Empty disables saving.
	DocumentPath string
	Config       config.Config
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	// Document state
	store        *blocks.Store
	documentPath string
	modified     bool

	// Tree pane
	rows       []blocks.Row
	expanded   map[string]bool
	cursor     int
	treeOffset int

	// Floating toolbar over the selected block
	toolbar *toolbar.Toolbar
	crumbs  *breadcrumb.Renderer

	// UI widgets
	viewport viewport.Model
	editor   textarea.Model
	help     help.Model
	mode     mode
	status   string
	showHelp bool

	// Layout sizing
	width  int
	height int

	// External change polling
	watchInterval time.Duration
	docStamp      documentStamp
	hasDocStamp   bool

	// Key lookup
	keyForAction map[string][]string
	keyToAction  map[string]string

	// Debounced preview bookkeeping
	renderSeq   int
	renderCache map[renderKey]string
	previewKey  renderKey
}

// New prepares the initial UI model for opts.Store.
func New(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = blocks.NewStore()
	}
	cfg := opts.Config
	if cfg.RTL {
		store.SetRTL(true)
	}

	vp := viewport.New(0, 0)
	vp.SetContent(emptyPreview)

	editor := textarea.New()
	editor.Placeholder = "Block content (markdown)..."
	editor.CharLimit = 0
	applyEditorTheme(&editor)

	crumbs := breadcrumb.New(store)

	m := &Model{
		store:         store,
		documentPath:  opts.DocumentPath,
		expanded:      map[string]bool{},
		crumbs:        crumbs,
		viewport:      vp,
		editor:        editor,
		help:          help.New(),
		mode:          modeBrowse,
		status:        "Ready",
		renderCache:   map[renderKey]string{},
		watchInterval: cfg.WatchInterval(),
	}
	m.toolbar = toolbar.New(store, store, toolbar.Options{
		ShowDuration:  cfg.ShowDuration(),
		HideDuration:  cfg.HideDuration(),
		Easing:        toolbar.EasingByName(cfg.Easing),
		FrameInterval: cfg.FrameInterval(),
		Breadcrumb:    crumbs,
		OnSettle: func(state toolbar.State) {
			appLog.Debug("toolbar settled", "state", state.String())
		},
	})
	m.loadKeybindings(cfg)
	m.rememberDocumentStamp()
	m.rebuildRows()
	return m
}

// Init projects the initial selection so the toolbar starts in the right
// state, and starts polling the document.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.syncFromStore(), m.scheduleDocumentWatchTick())
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toolbar.FrameMsg:
		return m, m.toolbar.Update(msg)
	case documentWatchTickMsg:
		return m.handleDocumentWatchTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case renderRequestMsg:
		return m.handleRenderRequest(msg)
	case renderResultMsg:
		return m.handleRenderResult(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeEditBlock:
			return m.handleEditKey(msg)
		case modeConfirmDelete:
			return m.handleConfirmDeleteKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	if m.mode == modeEditBlock {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Close releases the toolbar animation. Called when the program exits.
func (m *Model) Close() {
	m.toolbar.Close()
}

// Modified reports whether the document has unsaved changes.
func (m *Model) Modified() bool {
	return m.modified
}
