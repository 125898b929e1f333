package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"traxor/internal/ui/input/types"
)

// ConfirmMode answers the delete prompt. Every key other than yes, no and
// esc is swallowed.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, _ types.TextBuffer) types.Result {
	if msg.Type == tea.KeyEsc {
		return types.Emit(types.Simple(types.ActionCancel))
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return types.Result{}
	}

	switch msg.Runes[0] {
	case 'y', 'Y':
		return types.Emit(types.Simple(types.ActionConfirmYes))
	case 'n', 'N':
		return types.Emit(types.Simple(types.ActionCancel))
	}
	return types.Result{}
}
