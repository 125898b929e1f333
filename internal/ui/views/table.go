package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"traxor/internal/domain"
	"traxor/internal/ui/services/selection"
)

const (
	columnGap    = 1
	minNameWidth = 10
	ellipsis     = "…"
)

// TableRenderer draws the torrent list of a tab
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Widths lays columns out over width cells
func Widths(columns []domain.Column, width int) []int {
	widths := make([]int, len(columns))
	fixed, flex := 0, 0
	for i, c := range columns {
		w := columnWidth[c]
		if title := runewidth.StringWidth(c.Title()); w > 0 && w < title {
			w = title
		}
		widths[i] = w
		if w == 0 {
			flex++
		}
		fixed += w
	}
	if len(columns) > 1 {
		fixed += (len(columns) - 1) * columnGap
	}

	if flex > 0 {
		share := (width - fixed) / flex
		if share < minNameWidth {
			share = minNameWidth
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// Render draws the header and the rows in the viewport
func (r *TableRenderer) Render(tab domain.Tab, torrents []domain.Torrent, selected selection.Set,
	cursor, offset, height, width int) string {
	widths := Widths(tab.Columns, width)

	var b strings.Builder
	titles := make([]string, len(tab.Columns))
	for i, c := range tab.Columns {
		titles[i] = fit(c.Title(), widths[i], alignRight(c))
	}
	b.WriteString(r.styles.Header.Render(strings.Join(titles, gap())))

	if len(torrents) == 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("No torrents"))
		return b.String()
	}

	end := offset + height
	if end > len(torrents) {
		end = len(torrents)
	}
	for i := offset; i < end; i++ {
		t := torrents[i]
		cells := make([]string, len(tab.Columns))
		for j, c := range tab.Columns {
			cells[j] = fit(Cell(t, c), widths[j], alignRight(c))
		}
		line := strings.Join(cells, gap())

		style := r.styles.Row
		switch {
		case i == cursor:
			style = r.styles.Cursor
		case selected.Has(t.ID):
			style = r.styles.Selected
		}
		b.WriteString("\n")
		b.WriteString(style.Render(line))
	}
	return b.String()
}

func gap() string {
	return strings.Repeat(" ", columnGap)
}

// Numbers read better right aligned
func alignRight(c domain.Column) bool {
	switch c {
	case domain.ColumnName, domain.ColumnStatus, domain.ColumnPath,
		domain.ColumnError, domain.ColumnHash, domain.ColumnLabels:
		return false
	default:
		return true
	}
}

// fit truncates or pads s to exactly w cells
func fit(s string, w int, right bool) string {
	if w <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, w, ellipsis)
	if right {
		return runewidth.FillLeft(s, w)
	}
	return runewidth.FillRight(s, w)
}
