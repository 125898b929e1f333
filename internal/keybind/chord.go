package keybind

import (
	"fmt"
	"strings"
	"unicode"
)

// Modifier is a set of modifier keys held together with a key code.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt

	// ModNone indicates no modifiers.
	ModNone Modifier = 0
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String renders the set as "ctrl+shift+alt" in fixed order.
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// Key identifies the kind of key in a chord.
// For printable characters use KeyRune and set Chord.Rune;
// for function keys use KeyF and set Chord.F.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyNull
	KeyF
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEscape:    "esc",
	KeyNull:      "null",
}

// Chord is a modifier set plus exactly one key code. Chords are comparable
// with ==; use Normalize before comparing a configured chord with one
// produced by the terminal.
type Chord struct {
	Mods Modifier
	Key  Key
	Rune rune
	F    uint8
}

// Char returns an unmodified chord for a printable character.
func Char(r rune) Chord {
	return Chord{Key: KeyRune, Rune: r}
}

// Named returns an unmodified chord for a named key.
func Named(k Key) Chord {
	return Chord{Key: k}
}

// Function returns an unmodified chord for the function key fN.
func Function(n uint8) Chord {
	return Chord{Key: KeyF, F: n}
}

// WithMods returns c with mods added.
func (c Chord) WithMods(mods Modifier) Chord {
	c.Mods = c.Mods.With(mods)
	return c
}

// Normalize folds the spellings a legacy terminal cannot tell apart into one
// form: shift plus a lowercase letter becomes the uppercase letter, shift on
// an uppercase letter is dropped, and ctrl plus any letter is lowercase
// without shift.
func (c Chord) Normalize() Chord {
	if c.Key != KeyRune {
		return c
	}
	switch {
	case c.Mods.Has(ModCtrl) && unicode.IsLetter(c.Rune):
		c.Rune = unicode.ToLower(c.Rune)
		c.Mods = c.Mods.Without(ModShift)
	case c.Mods.Has(ModShift) && unicode.IsLower(c.Rune):
		c.Rune = unicode.ToUpper(c.Rune)
		c.Mods = c.Mods.Without(ModShift)
	case unicode.IsUpper(c.Rune):
		c.Mods = c.Mods.Without(ModShift)
	}
	return c
}

// String renders the chord in the configuration grammar, e.g. "ctrl+shift+d".
func (c Chord) String() string {
	var code string
	switch c.Key {
	case KeyNone:
		code = "none"
	case KeyRune:
		code = runeName(c.Rune)
	case KeyF:
		code = fmt.Sprintf("f%d", c.F)
	default:
		code = keyNames[c.Key]
	}
	if c.Mods == ModNone {
		return code
	}
	return c.Mods.String() + "+" + code
}

func runeName(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '+':
		return "plus"
	}
	return string(r)
}
