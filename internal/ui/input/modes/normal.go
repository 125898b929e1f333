package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"traxor/internal/keybind"
	"traxor/internal/ui/input/types"
)

// Binding pairs an action with its parsed, normalized chord.
type Binding struct {
	Action types.Action
	Keys   string
	Chord  keybind.Chord
}

// NormalMode looks key events up in the keybind table.
type NormalMode struct {
	bindings []Binding
}

// NewNormalMode creates a normal mode over an ordered keybind table
func NewNormalMode(bindings []Binding) *NormalMode {
	return &NormalMode{bindings: bindings}
}

func (m *NormalMode) Name() string {
	return "normal"
}

// HandleKey scans the table in order; the first binding whose chord equals
// the event wins.
func (m *NormalMode) HandleKey(msg tea.KeyMsg, _ types.TextBuffer) types.Result {
	chord, ok := keybind.FromKeyMsg(msg)
	if !ok {
		return types.Result{}
	}
	for _, b := range m.bindings {
		if b.Chord == chord {
			return types.Emit(b.Action)
		}
	}
	return types.Result{}
}
