package types

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ModeKind identifies an input mode
type ModeKind int

const (
	ModeNone ModeKind = iota
	ModeMove
	ModeRename
	ModeFilter
	ModeConfirmDelete
)

// Mode is the active input mode. DeleteData is only meaningful for
// ModeConfirmDelete and records whether local data goes with the torrent.
type Mode struct {
	Kind       ModeKind
	DeleteData bool
}

// Normal is the navigation mode.
var Normal = Mode{Kind: ModeNone}

// ConfirmDelete returns the confirmation mode for a delete.
func ConfirmDelete(deleteData bool) Mode {
	return Mode{Kind: ModeConfirmDelete, DeleteData: deleteData}
}

// IsNormal returns true when no modal state is active
func (m Mode) IsNormal() bool {
	return m.Kind == ModeNone
}

// IsText returns true for the modes that edit a line of text
func (m Mode) IsText() bool {
	switch m.Kind {
	case ModeMove, ModeRename, ModeFilter:
		return true
	default:
		return false
	}
}

// Name returns the mode name for display
func (m Mode) Name() string {
	switch m.Kind {
	case ModeMove:
		return "move"
	case ModeRename:
		return "rename"
	case ModeFilter:
		return "filter"
	case ModeConfirmDelete:
		if m.DeleteData {
			return "delete-force-confirm"
		}
		return "delete-confirm"
	default:
		return "normal"
	}
}

// ActionKind enumerates everything a key can mean
type ActionKind int

const (
	ActionQuit ActionKind = iota + 1
	ActionNextTab
	ActionPrevTab
	ActionNextItem
	ActionPrevItem
	ActionSwitchTab
	ActionToggleHelp
	ActionToggleItem
	ActionToggleAll
	ActionPauseAll
	ActionStartAll
	ActionMove
	ActionRename
	ActionDelete
	ActionSelect
	ActionFilter
	ActionClearFilter
	ActionSubmit
	ActionConfirmYes
	ActionCancel
)

var actionNames = map[ActionKind]string{
	ActionQuit:        "quit",
	ActionNextTab:     "next_tab",
	ActionPrevTab:     "prev_tab",
	ActionNextItem:    "next_item",
	ActionPrevItem:    "prev_item",
	ActionSwitchTab:   "switch_tab",
	ActionToggleHelp:  "toggle_help",
	ActionToggleItem:  "toggle_item",
	ActionToggleAll:   "toggle_all",
	ActionPauseAll:    "pause_all",
	ActionStartAll:    "start_all",
	ActionMove:        "move",
	ActionRename:      "rename",
	ActionDelete:      "delete",
	ActionSelect:      "select",
	ActionFilter:      "filter",
	ActionClearFilter: "clear_filter",
	ActionSubmit:      "submit",
	ActionConfirmYes:  "confirm_yes",
	ActionCancel:      "cancel",
}

// Action represents a command the dispatcher should execute.
// Tab is used by ActionSwitchTab and Force by ActionDelete; both are zero
// for every other kind so actions compare with ==.
type Action struct {
	Kind  ActionKind
	Tab   int
	Force bool
}

// Type returns the action name
func (a Action) Type() string {
	if name, ok := actionNames[a.Kind]; ok {
		return name
	}
	return "unknown"
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSwitchTab:
		return fmt.Sprintf("switch_tab(%d)", a.Tab)
	case ActionDelete:
		if a.Force {
			return "delete(force)"
		}
	}
	return a.Type()
}

// Simple returns an action that carries no data.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}

// SwitchTab returns the action that jumps to the tab at index.
func SwitchTab(index int) Action {
	return Action{Kind: ActionSwitchTab, Tab: index}
}

// Delete returns the delete action; force also removes local data.
func Delete(force bool) Action {
	return Action{Kind: ActionDelete, Force: force}
}

// TextBuffer is the part of the line editor the text modes write to.
type TextBuffer interface {
	Insert(r rune)
	Backspace()
}

// Result is the outcome of interpreting one key event.
type Result struct {
	Action    Action
	HasAction bool
	// Complete asks the caller to run path completion on the edit buffer.
	Complete bool
}

// Emit wraps an action in a Result.
func Emit(a Action) Result {
	return Result{Action: a, HasAction: true}
}

// ModeHandler interprets key events for one input mode
type ModeHandler interface {
	// HandleKey maps a key event to at most one action. Text modes may
	// also edit buf as a side effect.
	HandleKey(msg tea.KeyMsg, buf TextBuffer) Result

	// Name returns the mode name for display
	Name() string
}
