package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"traxor/internal/ui/input/types"
	"traxor/internal/ui/views"
)

// binding describes an action with the keys currently bound to it
func (m *Model) binding(a types.Action, desc string) key.Binding {
	keys := m.resolver.KeysFor(a)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// fixed describes a key the input modes handle without the keybind table
func fixed(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

// helpSections lists the configured keys for the help overlay
func (m *Model) helpSections() []views.HelpSection {
	var tabs []string
	for i := 0; i < 10; i++ {
		tabs = append(tabs, m.resolver.KeysFor(types.SwitchTab(i))...)
	}
	switchTab := key.NewBinding(key.WithKeys(tabs...), key.WithHelp(compactKeys(tabs), "Switch to tab"))

	return []views.HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{
			m.binding(types.Simple(types.ActionPrevItem), "Move up"),
			m.binding(types.Simple(types.ActionNextItem), "Move down"),
			m.binding(types.Simple(types.ActionPrevTab), "Previous tab"),
			m.binding(types.Simple(types.ActionNextTab), "Next tab"),
			switchTab,
		}},
		{Title: "Actions", Bindings: []key.Binding{
			m.binding(types.Simple(types.ActionToggleItem), "Start/stop torrent"),
			m.binding(types.Simple(types.ActionToggleAll), "Start/stop all"),
			m.binding(types.Simple(types.ActionPauseAll), "Pause all"),
			m.binding(types.Simple(types.ActionStartAll), "Start all"),
			m.binding(types.Simple(types.ActionSelect), "Multi-select"),
			m.binding(types.Simple(types.ActionMove), "Move torrent"),
			m.binding(types.Simple(types.ActionRename), "Rename torrent"),
			m.binding(types.Delete(false), "Remove torrent"),
			m.binding(types.Delete(true), "Delete with data"),
		}},
		{Title: "Search", Bindings: []key.Binding{
			m.binding(types.Simple(types.ActionFilter), "Search/filter"),
			m.binding(types.Simple(types.ActionClearFilter), "Clear filter"),
		}},
		{Title: "General", Bindings: []key.Binding{
			m.binding(types.Simple(types.ActionToggleHelp), "Toggle help"),
			m.binding(types.Simple(types.ActionQuit), "Quit"),
		}},
	}
}

// compactKeys shows "1-9, 0" style runs of digits as a range
func compactKeys(keys []string) string {
	if len(keys) > 2 && keys[0] == "1" && isDigitRun(keys) {
		last := keys[len(keys)-1]
		if last == "0" {
			return "1-" + keys[len(keys)-2] + ", 0"
		}
		return "1-" + last
	}
	return strings.Join(keys, "/")
}

func isDigitRun(keys []string) bool {
	for i, k := range keys {
		want := string(rune('1' + i))
		if i == 9 {
			want = "0"
		}
		if k != want {
			return false
		}
	}
	return true
}

// hints are the status bar key hints for the current mode. Callers hold
// the state lock.
func (m *Model) hints() []key.Binding {
	st := m.state
	switch st.Mode.Kind {
	case types.ModeMove, types.ModeRename:
		return []key.Binding{fixed("enter", "Submit"), fixed("esc", "Cancel"), fixed("tab", "Complete")}
	case types.ModeFilter:
		return []key.Binding{fixed("enter", "Confirm"), fixed("esc", "Cancel")}
	case types.ModeConfirmDelete:
		return []key.Binding{fixed("y", "Confirm"), fixed("n", "Cancel")}
	}

	if st.FilterQuery != "" {
		return []key.Binding{
			m.binding(types.Simple(types.ActionClearFilter), "Clear"),
			m.binding(types.Simple(types.ActionToggleHelp), "Help"),
		}
	}
	return []key.Binding{
		m.binding(types.Simple(types.ActionToggleHelp), "Help"),
		m.binding(types.Simple(types.ActionFilter), "Search"),
	}
}
