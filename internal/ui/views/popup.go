package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"traxor/internal/ui/input/types"
)

// InputInfo is the edit buffer as the prompt shows it
type InputInfo struct {
	Mode           types.Mode
	Text           string
	Cursor         int // byte offset
	Candidates     int
	CandidateIndex int
	DeleteCount    int
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PromptTitle names the prompt of a text mode
func PromptTitle(mode types.Mode) string {
	switch mode.Kind {
	case types.ModeMove:
		return "Move to"
	case types.ModeRename:
		return "Rename"
	case types.ModeFilter:
		return "Filter"
	default:
		return ""
	}
}

// RenderInput draws the prompt of a text mode, inner width cells wide
func (pr *PopupRenderer) RenderInput(in InputInfo, width int) string {
	cursor := in.Cursor
	if cursor < 0 || cursor > len(in.Text) {
		cursor = len(in.Text)
	}
	before, after := in.Text[:cursor], in.Text[cursor:]
	under := " "
	if after != "" {
		r := []rune(after)[0]
		under = string(r)
		after = after[len(under):]
	}

	// Keep the cursor in view when the text is wider than the prompt
	if over := runewidth.StringWidth(before) + 1 - width; over > 0 {
		before = cutLeft(before, over)
	}
	line := before + lipgloss.NewStyle().Reverse(true).Render(under) + after

	var b strings.Builder
	b.WriteString(pr.styles.PopupTitle.Render(PromptTitle(in.Mode)))
	if in.Candidates > 0 {
		b.WriteString(pr.styles.Dim.Render(fmt.Sprintf("  %d/%d", in.CandidateIndex+1, in.Candidates)))
	}
	b.WriteString("\n")
	b.WriteString(line)
	return pr.styles.Popup.Width(width).Render(b.String())
}

// RenderConfirm draws the delete confirmation
func (pr *PopupRenderer) RenderConfirm(in InputInfo) string {
	noun := "torrent"
	if in.DeleteCount != 1 {
		noun = "torrents"
	}
	question := fmt.Sprintf("Remove %d %s?", in.DeleteCount, noun)
	if in.Mode.DeleteData {
		question = fmt.Sprintf("Delete %d %s and their local data?", in.DeleteCount, noun)
	}
	answers := pr.styles.Yes.Render("y") + " confirm  " + pr.styles.No.Render("n") + " cancel"
	return pr.styles.Popup.Render(pr.styles.PopupTitle.Render(question) + "\n" + answers)
}

// RenderPopupOverlay puts popup in the middle of base, which is greyed out
func (pr *PopupRenderer) RenderPopupOverlay(base, popup string, width, height int) string {
	popupW := lipgloss.Width(popup)
	popupH := lipgloss.Height(popup)
	x := (width - popupW) / 2
	y := (height - popupH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	lines := strings.Split(base, "\n")
	for len(lines) < y+popupH {
		lines = append(lines, "")
	}
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = stripANSI(line)
	}

	for i, pl := range strings.Split(popup, "\n") {
		plain := lines[y+i]
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := cutLeft(plain, x+popupW)
		lines[y+i] = grey.Render(left) + pl + grey.Render(right)
	}
	for i, line := range lines {
		if i < y || i >= y+popupH {
			lines[i] = grey.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// cutLeft drops the first w cells of s
func cutLeft(s string, w int) string {
	width := 0
	for i, r := range s {
		if width >= w {
			return s[i:]
		}
		width += runewidth.RuneWidth(r)
	}
	return ""
}
