// Package keybind parses human-written key combinations such as "ctrl+d",
// "shift+f5" or "plus" and converts terminal key events into the same form.
package keybind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoKeyCode is returned when a keybind names only modifiers.
	ErrNoKeyCode = errors.New("keybind has no key code")
	// ErrUnknownPart matches any *UnknownPartError via errors.Is.
	ErrUnknownPart = errors.New("unknown keybind part")
)

// UnknownPartError reports a token that is neither a modifier nor a key.
type UnknownPartError struct {
	Part string
}

func (e *UnknownPartError) Error() string {
	return fmt.Sprintf("unknown keybind part %q", e.Part)
}

// Is lets errors.Is(err, ErrUnknownPart) match.
func (e *UnknownPartError) Is(target error) bool {
	return target == ErrUnknownPart
}

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
}

var namedKeys = map[string]Chord{
	"enter":     Named(KeyEnter),
	"return":    Named(KeyEnter),
	"tab":       Named(KeyTab),
	"backspace": Named(KeyBackspace),
	"delete":    Named(KeyDelete),
	"del":       Named(KeyDelete),
	"insert":    Named(KeyInsert),
	"home":      Named(KeyHome),
	"end":       Named(KeyEnd),
	"pageup":    Named(KeyPageUp),
	"page_up":   Named(KeyPageUp),
	"pgup":      Named(KeyPageUp),
	"pagedown":  Named(KeyPageDown),
	"page_down": Named(KeyPageDown),
	"pgdown":    Named(KeyPageDown),
	"up":        Named(KeyUp),
	"down":      Named(KeyDown),
	"left":      Named(KeyLeft),
	"right":     Named(KeyRight),
	"esc":       Named(KeyEscape),
	"escape":    Named(KeyEscape),
	"null":      Named(KeyNull),
	"space":     Char(' '),
}

var symbolNames = map[string]rune{
	"plus":       '+',
	"minus":      '-',
	"equals":     '=',
	"equal":      '=',
	"comma":      ',',
	"dot":        '.',
	"period":     '.',
	"semicolon":  ';',
	"slash":      '/',
	"backslash":  '\\',
	"tilde":      '~',
	"grave":      '`',
	"backtick":   '`',
	"quote":      '"',
	"apostrophe": '\'',
}

// Parse converts a keybind such as "ctrl+shift+d" into a Chord.
//
// Tokens are separated by '+' and trimmed. Each token is matched
// case-insensitively against, in order: modifier names, named keys, symbol
// names and function keys f1..f255. A token of exactly one character is
// taken verbatim, so "D" and "d" differ. A token made only of whitespace is
// the space key. Empty tokens are skipped, which means a literal plus must be
// written as "plus".
//
// When a keybind names more than one key code the last one wins.
func Parse(spec string) (Chord, error) {
	var c Chord
	for _, raw := range strings.Split(spec, "+") {
		part := strings.TrimSpace(raw)
		if part == "" {
			if raw != "" {
				c = setCode(c, Char(' '))
			}
			continue
		}

		lower := strings.ToLower(part)
		if mod, ok := modifierNames[lower]; ok {
			c.Mods = c.Mods.With(mod)
			continue
		}
		if code, ok := namedKeys[lower]; ok {
			c = setCode(c, code)
			continue
		}
		if r, ok := symbolNames[lower]; ok {
			c = setCode(c, Char(r))
			continue
		}
		if n, ok := functionKey(lower); ok {
			c = setCode(c, Function(n))
			continue
		}
		if utf8.RuneCountInString(part) == 1 {
			r, _ := utf8.DecodeRuneInString(part)
			c = setCode(c, Char(r))
			continue
		}
		return Chord{}, &UnknownPartError{Part: part}
	}

	if c.Key == KeyNone {
		return Chord{}, fmt.Errorf("%w: %q", ErrNoKeyCode, spec)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in tables.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func setCode(c Chord, code Chord) Chord {
	c.Key = code.Key
	c.Rune = code.Rune
	c.F = code.F
	return c
}

func functionKey(lower string) (uint8, bool) {
	if len(lower) < 2 || lower[0] != 'f' {
		return 0, false
	}
	n, err := strconv.ParseUint(lower[1:], 10, 8)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint8(n), true
}
