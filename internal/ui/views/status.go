package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"traxor/internal/ui/input/types"
)

// StatusInfo is what the status bar shows
type StatusInfo struct {
	Mode     types.Mode
	Filter   string
	Hints    []key.Binding
	Total    int
	Visible  int
	Selected int
	Totals   Totals
	Message  string
	Error    string
	Updated  time.Time // last successful refresh
}

// ModeTitle names the active mode for the status bar border
func ModeTitle(mode types.Mode, filter string) string {
	switch mode.Kind {
	case types.ModeMove:
		return "MOVE"
	case types.ModeRename:
		return "RENAME"
	case types.ModeFilter:
		return "Filter: " + filter
	case types.ModeConfirmDelete:
		return "DELETE"
	}
	if filter != "" {
		return "Filter: " + filter
	}
	return ""
}

// Count renders selected/total, filtered/total or the plain total
func Count(selected, visible, total int, filtered bool) string {
	switch {
	case selected > 0:
		return fmt.Sprintf("%d/%d", selected, total)
	case filtered:
		return fmt.Sprintf("%d/%d", visible, total)
	default:
		return fmt.Sprintf("%d", total)
	}
}

// RenderStatus draws the status bar across width cells
func (r *Renderer) RenderStatus(info StatusInfo, width int) string {
	h := help.New()
	h.ShortSeparator = " │ "
	h.Styles.ShortKey = r.styles.Key
	h.Styles.ShortDesc = lipgloss.NewStyle()
	h.Styles.ShortSeparator = r.styles.Dim
	left := h.ShortHelpView(info.Hints)

	countStyle := r.styles.Count
	switch {
	case info.Selected > 0:
		countStyle = r.styles.SelectedCount
	case info.Filter != "":
		countStyle = r.styles.Filter
	}
	down, up := r.styles.Dim, r.styles.Dim
	if info.Totals.Down > 0 {
		down = r.styles.Down
	}
	if info.Totals.Up > 0 {
		up = r.styles.Up
	}
	sep := r.styles.Dim.Render(" │ ")
	right := countStyle.Render(Count(info.Selected, info.Visible, info.Total, info.Filter != "")) +
		sep +
		down.Render("↓"+Speed(info.Totals.Down)) + " " + up.Render("↑"+Speed(info.Totals.Up)) +
		sep +
		r.styles.Dim.Render("D:") + FileSize(info.Totals.Downloaded) + " " +
		r.styles.Dim.Render("U:") + FileSize(info.Totals.Uploaded)
	if !info.Updated.IsZero() {
		right += sep + r.styles.Dim.Render(info.Updated.Format("15:04:05"))
	}

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		line = left + fmt.Sprintf("%*s", pad, "") + right
	}

	title := ModeTitle(info.Mode, info.Filter)
	if title != "" {
		line = r.styles.Mode.Render(title) + "  " + line
	}

	switch {
	case info.Error != "":
		return line + "\n" + r.styles.StatusError.Render("Error: "+info.Error)
	case info.Message != "":
		return line + "\n" + r.styles.StatusSuccess.Render(info.Message)
	}
	return line
}
