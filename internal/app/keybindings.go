package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/treykane/cli-blocks/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant identifies a user-triggerable action in browse mode. A key
// press is looked up in keyToAction and the resulting action is dispatched
// in handleBrowseKey. Defaults live in defaultActionKeys; the "keybindings"
// map in config.json overrides them per action.
// ---------------------------------------------------------------------------

const (
	// actionCursorUp selects the previous visible block.
	actionCursorUp = "tree.cursor.up"

	// actionCursorDown selects the next visible block.
	actionCursorDown = "tree.cursor.down"

	// actionExpand expands the block under the cursor.
	actionExpand = "tree.expand"

	// actionCollapse collapses the block under the cursor.
	actionCollapse = "tree.collapse"

	// actionSelect selects the block under the cursor again after the
	// selection was cleared.
	actionSelect = "block.select"

	// actionDeselect clears the selection, which hides the toolbar.
	actionDeselect = "block.deselect"

	// actionNavigateUp activates the toolbar's navigate-up button.
	actionNavigateUp = "toolbar.navigate_up"

	// actionEdit edits the selected block's content.
	actionEdit = "block.edit"

	// actionAdd appends a new paragraph inside the selected block.
	actionAdd = "block.add"

	// actionDelete removes the selected block after confirmation.
	actionDelete = "block.delete"

	// actionCopyContent copies the selected block's markdown.
	actionCopyContent = "block.copy.content"

	// actionCopyPath copies the selected block's ancestry.
	actionCopyPath = "block.copy.path"

	// actionToggleRTL flips the layout direction.
	actionToggleRTL = "layout.rtl.toggle"

	// actionWrite saves the document.
	actionWrite = "document.write"

	// actionHelp toggles the full help footer.
	actionHelp = "help.toggle"

	// actionQuit exits the application.
	actionQuit = "app.quit"
)

var defaultActionKeys = map[string][]string{
	actionCursorUp:    {"up", "k"},
	actionCursorDown:  {"down", "j"},
	actionExpand:      {"right", "l"},
	actionCollapse:    {"left", "h"},
	actionSelect:      {"enter", " "},
	actionDeselect:    {"esc"},
	actionNavigateUp:  {"u"},
	actionEdit:        {"e"},
	actionAdd:         {"a"},
	actionDelete:      {"d"},
	actionCopyContent: {"y"},
	actionCopyPath:    {"Y"},
	actionToggleRTL:   {"t"},
	actionWrite:       {"w"},
	actionHelp:        {"?"},
	actionQuit:        {"q", "ctrl+c"},
}

// actionHelpText is the footer description of each action.
var actionHelpText = map[string]string{
	actionCursorUp:    "prev",
	actionCursorDown:  "next",
	actionExpand:      "expand",
	actionCollapse:    "collapse",
	actionSelect:      "select",
	actionDeselect:    "deselect",
	actionNavigateUp:  "navigate up",
	actionEdit:        "edit",
	actionAdd:         "add",
	actionDelete:      "delete",
	actionCopyContent: "copy",
	actionCopyPath:    "copy path",
	actionToggleRTL:   "rtl",
	actionWrite:       "write",
	actionHelp:        "help",
	actionQuit:        "quit",
}

// shortHelpActions are shown in the collapsed footer.
var shortHelpActions = []string{actionNavigateUp, actionEdit, actionAdd, actionWrite, actionHelp, actionQuit}

// loadKeybindings builds the key lookup tables from defaults plus the
// overrides in cfg.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex inverts keyForAction. Actions are visited in sorted
// order so conflicts resolve the same way on every run.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			key = normalizeKeyString(key)
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases key names and spells single upper-case
// letters as shift combinations, matching tea.KeyMsg.String.
func normalizeKeyString(key string) string {
	if key == " " {
		return key
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

// binding describes action as a bubbles key binding for the help footer.
func (m *Model) binding(action string) key.Binding {
	keys := m.keyForAction[action]
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), actionHelpText[action]),
	)
}

// footerKeys adapts the model's bindings to help.KeyMap.
type footerKeys struct {
	m *Model
}

func (k footerKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelpActions))
	for _, action := range shortHelpActions {
		out = append(out, k.m.binding(action))
	}
	return out
}

func (k footerKeys) FullHelp() [][]key.Binding {
	groups := [][]string{
		{actionCursorUp, actionCursorDown, actionExpand, actionCollapse},
		{actionSelect, actionDeselect, actionNavigateUp},
		{actionEdit, actionAdd, actionDelete},
		{actionCopyContent, actionCopyPath},
		{actionToggleRTL, actionWrite, actionHelp, actionQuit},
	}
	out := make([][]key.Binding, 0, len(groups))
	for _, group := range groups {
		column := make([]key.Binding, 0, len(group))
		for _, action := range group {
			column = append(column, k.m.binding(action))
		}
		out = append(out, column)
	}
	return out
}
