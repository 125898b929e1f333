// Package lineedit holds the single-line text buffer used by the move,
// rename and filter prompts.
package lineedit

import (
	"context"
	"slices"
	"unicode/utf8"
)

// Completer produces full replacement strings for a partial input.
type Completer interface {
	Complete(ctx context.Context, partial string) ([]string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, partial string) ([]string, error)

func (f CompleterFunc) Complete(ctx context.Context, partial string) ([]string, error) {
	return f(ctx, partial)
}

// Editor is a line of text with a byte cursor and a cycling list of
// completion candidates.
//
// The cursor always sits on a rune boundary within [0, len(Text)], and
// Index is within [0, len(Candidates)) whenever Candidates is non-empty.
type Editor struct {
	text       string
	cursor     int
	candidates []string
	index      int
	// origin is the text the current candidates were completed from.
	origin string
}

// Text returns the current buffer contents
func (e *Editor) Text() string {
	return e.text
}

// Cursor returns the byte offset of the cursor
func (e *Editor) Cursor() int {
	return e.cursor
}

// Candidates returns the last completion list
func (e *Editor) Candidates() []string {
	return e.candidates
}

// Index returns the position of the selected candidate
func (e *Editor) Index() int {
	return e.index
}

// Insert puts r at the cursor and moves the cursor past its encoding.
func (e *Editor) Insert(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	buf := utf8.AppendRune(nil, r)
	e.text = e.text[:e.cursor] + string(buf) + e.text[e.cursor:]
	e.cursor += len(buf)
}

// Backspace removes the rune before the cursor. It does nothing at the start
// of the line.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.text[:e.cursor])
	e.text = e.text[:e.cursor-size] + e.text[e.cursor:]
	e.cursor -= size
}

// Clear empties the buffer and forgets completion candidates.
func (e *Editor) Clear() {
	e.text = ""
	e.cursor = 0
	e.candidates = nil
	e.index = 0
	e.origin = ""
}

// SetText replaces the buffer and puts the cursor at the end.
func (e *Editor) SetText(text string) {
	e.text = text
	e.cursor = len(text)
}

// ApplyCompletions updates the buffer from a fresh candidate list.
// An empty list clears the candidates and leaves the text alone. A list equal
// to the previous one advances to the next candidate, wrapping around. Any
// other list starts over at its first candidate.
func (e *Editor) ApplyCompletions(candidates []string) {
	if len(candidates) == 0 {
		e.candidates = nil
		e.index = 0
		return
	}

	if slices.Equal(candidates, e.candidates) {
		e.index = (e.index + 1) % len(e.candidates)
	} else {
		e.candidates = slices.Clone(candidates)
		e.index = 0
	}
	e.SetText(e.candidates[e.index])
}

// Complete asks c for candidates for the buffer and applies them.
// While the buffer still shows the selected candidate, c is asked again with
// the text the candidates came from, so repeated calls cycle through them.
// On error the buffer and candidates are left unchanged.
func (e *Editor) Complete(ctx context.Context, c Completer) error {
	if c == nil {
		return nil
	}

	partial := e.text
	if len(e.candidates) > 0 && e.text == e.candidates[e.index] {
		partial = e.origin
	}

	candidates, err := c.Complete(ctx, partial)
	if err != nil {
		return err
	}
	if !slices.Equal(candidates, e.candidates) {
		e.origin = partial
	}
	e.ApplyCompletions(candidates)
	return nil
}
