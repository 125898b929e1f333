// Package views renders the application state as terminal text.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"traxor/internal/config"
	"traxor/internal/domain"
	"traxor/internal/ui/services/selection"
)

// Rows taken by everything but the table: tab bar, header and status lines
const chromeHeight = 5

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Tabs     []domain.Tab
	TabIndex int

	Torrents       []domain.Torrent // visible rows
	Selected       selection.Set
	Cursor         int
	ViewportOffset int

	Status StatusInfo
	Input  InputInfo

	ShowHelp bool
	Help     []HelpSection
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	table       *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(colors config.ColorsConfig) *Renderer {
	styles := NewStyles(colors)
	return &Renderer{
		styles:      styles,
		table:       NewTableRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// TableHeight is how many torrent rows fit in a terminal of height rows
func TableHeight(height int) int {
	if h := height - chromeHeight; h > 1 {
		return h
	}
	return 1
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	inner := width - 2 // border

	tab := domain.Tab{Name: "All", Columns: []domain.Column{domain.ColumnName}}
	if state.TabIndex >= 0 && state.TabIndex < len(state.Tabs) {
		tab = state.Tabs[state.TabIndex]
	}

	rows := TableHeight(height)
	table := r.table.Render(tab, state.Torrents, state.Selected,
		state.Cursor, state.ViewportOffset, rows, inner)
	table = r.styles.Border.Width(inner).Height(rows + 1).Render(table)

	content := &strings.Builder{}
	content.WriteString(r.RenderTabs(state.Tabs, state.TabIndex))
	content.WriteString("\n")
	content.WriteString(table)
	content.WriteString("\n")
	content.WriteString(r.RenderStatus(state.Status, width))
	base := content.String()

	switch {
	case state.Input.Mode.IsText():
		popup := r.popupRender.RenderInput(state.Input, width/2)
		return r.popupRender.RenderPopupOverlay(base, popup, width, height)
	case !state.Input.Mode.IsNormal():
		popup := r.popupRender.RenderConfirm(state.Input)
		return r.popupRender.RenderPopupOverlay(base, popup, width, height)
	case state.ShowHelp:
		popup := r.styles.Popup.Render(r.RenderHelp(state.Help))
		return r.popupRender.RenderPopupOverlay(base, popup, width, height)
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(base)
}
