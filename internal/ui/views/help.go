package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
)

const helpKeyWidth = 14

// HelpSection is a titled group of bindings in the help overlay
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// RenderHelp draws the keybinding overlay content. Disabled bindings, the
// ones with no key configured, are left out.
func (r *Renderer) RenderHelp(sections []HelpSection) string {
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render("Keybindings"))
	for _, s := range sections {
		rows := 0
		var body strings.Builder
		for _, kb := range s.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			body.WriteString("\n  ")
			body.WriteString(r.styles.Key.Render(runewidth.FillRight(h.Key, helpKeyWidth)))
			body.WriteString(h.Desc)
			rows++
		}
		if rows == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(r.styles.Section.Render(s.Title))
		b.WriteString(body.String())
	}
	return b.String()
}
