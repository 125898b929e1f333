package input

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"traxor/internal/config"
	"traxor/internal/keybind"
	"traxor/internal/ui/input/modes"
	"traxor/internal/ui/input/types"
)

// Binding is one row of the keybind table before parsing
type Binding struct {
	Name   string
	Action types.Action
	Keys   string
}

// Resolver turns key events into actions. The keybind table is parsed once
// at construction and never changes; build a new Resolver to rebind.
type Resolver struct {
	modes    map[types.ModeKind]types.ModeHandler
	bindings []modes.Binding
	errs     []error
}

// NewResolver parses the table in order. Bindings that do not parse are
// logged once and left out, so they never match. Empty key strings are
// unbound and skipped quietly.
func NewResolver(table []Binding) *Resolver {
	r := &Resolver{modes: make(map[types.ModeKind]types.ModeHandler)}

	for _, b := range table {
		if b.Keys == "" {
			continue
		}
		chord, err := keybind.Parse(b.Keys)
		if err != nil {
			log.WithFields(log.Fields{
				"action":  b.Name,
				"keybind": b.Keys,
			}).WithError(err).Warn("input: ignoring keybind")
			r.errs = append(r.errs, fmt.Errorf("%s = %q: %w", b.Name, b.Keys, err))
			continue
		}
		r.bindings = append(r.bindings, modes.Binding{
			Action: b.Action,
			Keys:   b.Keys,
			Chord:  chord.Normalize(),
		})
	}

	// Register all mode handlers
	r.modes[types.ModeNone] = modes.NewNormalMode(r.bindings)
	r.modes[types.ModeMove] = modes.NewTextInputMode("move")
	r.modes[types.ModeRename] = modes.NewTextInputMode("rename")
	r.modes[types.ModeFilter] = modes.NewTextInputMode("filter")
	r.modes[types.ModeConfirmDelete] = modes.NewConfirmMode()

	return r
}

// Resolve interprets one key event under mode. In text modes printable runes
// and backspace are applied to buf directly, and Result.Complete asks the
// caller to run completion; neither produces an action.
func (r *Resolver) Resolve(msg tea.KeyMsg, mode types.Mode, buf types.TextBuffer) types.Result {
	handler := r.modes[mode.Kind]
	if handler == nil {
		return types.Result{}
	}
	return handler.HandleKey(msg, buf)
}

// Bindings returns the parsed table in matching order
func (r *Resolver) Bindings() []modes.Binding {
	return r.bindings
}

// Errors returns the parse errors found at construction
func (r *Resolver) Errors() []error {
	return r.errs
}

// KeysFor returns the configured key strings bound to a, in table order
func (r *Resolver) KeysFor(a types.Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action == a {
			keys = append(keys, b.Chord.String())
		}
	}
	return keys
}

var namedActions = map[string]types.Action{
	"quit":           types.Simple(types.ActionQuit),
	"next_tab":       types.Simple(types.ActionNextTab),
	"prev_tab":       types.Simple(types.ActionPrevTab),
	"next_torrent":   types.Simple(types.ActionNextItem),
	"prev_torrent":   types.Simple(types.ActionPrevItem),
	"toggle_torrent": types.Simple(types.ActionToggleItem),
	"toggle_all":     types.Simple(types.ActionToggleAll),
	"delete":         types.Delete(false),
	"delete_force":   types.Delete(true),
	"select":         types.Simple(types.ActionSelect),
	"toggle_help":    types.Simple(types.ActionToggleHelp),
	"move_torrent":   types.Simple(types.ActionMove),
	"rename_torrent": types.Simple(types.ActionRename),
	"filter":         types.Simple(types.ActionFilter),
	"clear_filter":   types.Simple(types.ActionClearFilter),
	"pause_all":      types.Simple(types.ActionPauseAll),
	"start_all":      types.Simple(types.ActionStartAll),
}

// ActionFor maps a config action name to its action
func ActionFor(name string) (types.Action, bool) {
	if a, ok := namedActions[name]; ok {
		return a, true
	}
	var n int
	if _, err := fmt.Sscanf(name, "switch_tab_%d", &n); err == nil && n >= 1 {
		return types.SwitchTab(n - 1), true
	}
	return types.Action{}, false
}

// BindingsFromConfig builds the keybind table in config order
func BindingsFromConfig(cfg config.KeybindsConfig) []Binding {
	var table []Binding
	for _, e := range cfg.Entries() {
		a, ok := ActionFor(e.Name)
		if !ok {
			continue
		}
		table = append(table, Binding{Name: e.Name, Action: a, Keys: e.Keys})
	}
	return table
}
