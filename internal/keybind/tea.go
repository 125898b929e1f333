package keybind

import (
	tea "github.com/charmbracelet/bubbletea"
)

var teaNamed = map[tea.KeyType]Chord{
	tea.KeyEnter:     Named(KeyEnter),
	tea.KeyTab:       Named(KeyTab),
	tea.KeyShiftTab:  Named(KeyTab).WithMods(ModShift),
	tea.KeyBackspace: Named(KeyBackspace),
	tea.KeyDelete:    Named(KeyDelete),
	tea.KeyInsert:    Named(KeyInsert),
	tea.KeyHome:      Named(KeyHome),
	tea.KeyEnd:       Named(KeyEnd),
	tea.KeyPgUp:      Named(KeyPageUp),
	tea.KeyPgDown:    Named(KeyPageDown),
	tea.KeyUp:        Named(KeyUp),
	tea.KeyDown:      Named(KeyDown),
	tea.KeyLeft:      Named(KeyLeft),
	tea.KeyRight:     Named(KeyRight),
	tea.KeyEsc:       Named(KeyEscape),
	tea.KeyNull:      Named(KeyNull),
	tea.KeySpace:     Char(' '),

	tea.KeyShiftUp:    Named(KeyUp).WithMods(ModShift),
	tea.KeyShiftDown:  Named(KeyDown).WithMods(ModShift),
	tea.KeyShiftLeft:  Named(KeyLeft).WithMods(ModShift),
	tea.KeyShiftRight: Named(KeyRight).WithMods(ModShift),
	tea.KeyShiftHome:  Named(KeyHome).WithMods(ModShift),
	tea.KeyShiftEnd:   Named(KeyEnd).WithMods(ModShift),

	tea.KeyCtrlUp:     Named(KeyUp).WithMods(ModCtrl),
	tea.KeyCtrlDown:   Named(KeyDown).WithMods(ModCtrl),
	tea.KeyCtrlLeft:   Named(KeyLeft).WithMods(ModCtrl),
	tea.KeyCtrlRight:  Named(KeyRight).WithMods(ModCtrl),
	tea.KeyCtrlHome:   Named(KeyHome).WithMods(ModCtrl),
	tea.KeyCtrlEnd:    Named(KeyEnd).WithMods(ModCtrl),
	tea.KeyCtrlPgUp:   Named(KeyPageUp).WithMods(ModCtrl),
	tea.KeyCtrlPgDown: Named(KeyPageDown).WithMods(ModCtrl),

	tea.KeyCtrlShiftUp:    Named(KeyUp).WithMods(ModCtrl | ModShift),
	tea.KeyCtrlShiftDown:  Named(KeyDown).WithMods(ModCtrl | ModShift),
	tea.KeyCtrlShiftLeft:  Named(KeyLeft).WithMods(ModCtrl | ModShift),
	tea.KeyCtrlShiftRight: Named(KeyRight).WithMods(ModCtrl | ModShift),
	tea.KeyCtrlShiftHome:  Named(KeyHome).WithMods(ModCtrl | ModShift),
	tea.KeyCtrlShiftEnd:   Named(KeyEnd).WithMods(ModCtrl | ModShift),
}

// bubbletea key types are not contiguous for function keys.
var teaFunction = []tea.KeyType{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5,
	tea.KeyF6, tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10,
	tea.KeyF11, tea.KeyF12, tea.KeyF13, tea.KeyF14, tea.KeyF15,
	tea.KeyF16, tea.KeyF17, tea.KeyF18, tea.KeyF19, tea.KeyF20,
}

// FromKeyMsg converts a bubbletea key event into a normalized Chord.
// It returns false for events that carry no single key, such as pastes.
func FromKeyMsg(msg tea.KeyMsg) (Chord, bool) {
	k := tea.Key(msg)
	var mods Modifier
	if k.Alt {
		mods = mods.With(ModAlt)
	}

	if k.Type == tea.KeyRunes {
		if len(k.Runes) != 1 || k.Paste {
			return Chord{}, false
		}
		return Char(k.Runes[0]).WithMods(mods).Normalize(), true
	}

	if c, ok := teaNamed[k.Type]; ok {
		return c.WithMods(mods), true
	}

	// ctrl+i and ctrl+m arrive as tab and enter and are handled above.
	if k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(k.Type-tea.KeyCtrlA)
		return Char(r).WithMods(mods | ModCtrl), true
	}

	for i, t := range teaFunction {
		if k.Type == t {
			return Function(uint8(i + 1)).WithMods(mods), true
		}
	}

	return Chord{}, false
}
