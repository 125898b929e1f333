package views

import (
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"traxor/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Header        lipgloss.Style
	Row           lipgloss.Style
	Cursor        lipgloss.Style
	Selected      lipgloss.Style
	Dim           lipgloss.Style
	Border        lipgloss.Style
	Popup         lipgloss.Style
	PopupTitle    lipgloss.Style
	Key           lipgloss.Style
	Section       lipgloss.Style
	Mode          lipgloss.Style
	Filter        lipgloss.Style
	Count         lipgloss.Style
	SelectedCount lipgloss.Style
	Down          lipgloss.Style
	Up            lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Yes           lipgloss.Style
	No            lipgloss.Style
}

// NewStyles creates styles from the configured palette. Colors that do not
// resolve fall back to the terminal default.
func NewStyles(colors config.ColorsConfig) *Styles {
	highlightBg := color(colors.HighlightBackground)
	highlightFg := color(colors.HighlightForeground)
	header := color(colors.HeaderForeground)
	info := color(colors.InfoForeground)
	warning := color(colors.WarningForeground)
	errColor := color(colors.ErrorForeground)

	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(warning).Underline(true),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(header),
		Row:       lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Background(info).Foreground(highlightFg),
		Selected:  lipgloss.NewStyle().Background(highlightBg).Foreground(highlightFg),
		Dim:       lipgloss.NewStyle().Faint(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 1),
		PopupTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Key:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Mode:          lipgloss.NewStyle().Bold(true).Foreground(warning),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Count:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		SelectedCount: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Down:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Up:            lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		StatusError:   lipgloss.NewStyle().Foreground(errColor),
		StatusWarning: lipgloss.NewStyle().Foreground(warning),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Yes:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		No:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func color(value string) lipgloss.TerminalColor {
	c, err := config.ResolveColor(value)
	if err != nil {
		log.WithError(err).Warn("views: ignoring color")
		return lipgloss.NoColor{}
	}
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
