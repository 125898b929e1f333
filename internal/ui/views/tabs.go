package views

import (
	"fmt"
	"strings"

	"traxor/internal/domain"
)

// RenderTabs draws the tab bar. Tabs are numbered as the switch_tab keys are.
func (r *Renderer) RenderTabs(tabs []domain.Tab, active int) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", (i+1)%10, t.Name)
		if i == active {
			parts[i] = r.styles.ActiveTab.Render(label)
		} else {
			parts[i] = r.styles.Tab.Render(label)
		}
	}
	return r.styles.Title.Render("traxor") + "  " + strings.Join(parts, "")
}
