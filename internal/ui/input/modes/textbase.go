package modes

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"traxor/internal/ui/input/types"
)

// TextInputMode handles the move, rename and filter prompts. Keybinds are not
// consulted while it is active.
type TextInputMode struct {
	name string
}

func NewTextInputMode(name string) *TextInputMode {
	return &TextInputMode{name: name}
}

func (m *TextInputMode) Name() string {
	return m.name
}

// HandleKey submits on enter and cancels on esc. Tab asks the caller to run
// completion. Printable runes and backspace edit buf directly and produce no
// action, so this is not a pure function.
func (m *TextInputMode) HandleKey(msg tea.KeyMsg, buf types.TextBuffer) types.Result {
	switch msg.Type {
	case tea.KeyEnter:
		return types.Emit(types.Simple(types.ActionSubmit))
	case tea.KeyEsc:
		return types.Emit(types.Simple(types.ActionCancel))
	case tea.KeyTab:
		return types.Result{Complete: true}
	case tea.KeyBackspace:
		if buf != nil {
			buf.Backspace()
		}
	case tea.KeySpace:
		if buf != nil {
			buf.Insert(' ')
		}
	case tea.KeyRunes:
		if msg.Alt || buf == nil {
			return types.Result{}
		}
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				buf.Insert(r)
			}
		}
	}
	return types.Result{}
}
