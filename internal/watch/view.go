package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/ui"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorInfo)
	mutedStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	labelStyle  = lipgloss.NewStyle().Foreground(ui.ColorSecondary)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("displayreset watch"))
	if !m.lastUpdate.IsZero() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  updated %s", m.lastUpdate.Format("15:04:05"))))
	}
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(mutedStyle.Render("no active displays"))
		b.WriteString("\n")
	} else {
		tbl := ui.NewTable(
			[]ui.TableColumn{
				{Title: "ID", Width: 6},
				{Title: "NAME", Width: 14},
				{Title: "TYPE", Width: 9},
				{Title: "CURRENT MODE", Width: 20},
				{Title: "MODES", Width: 6},
				{Title: "RECOMMENDED", Width: 12},
			},
			ui.RenderRows(rowsFor(m.records)),
		)
		b.WriteString(tbl.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("q") + mutedStyle.Render(" quit  "))
	b.WriteString(labelStyle.Render("r") + mutedStyle.Render(" refresh"))
	b.WriteString("\n")
	return b.String()
}

func rowsFor(records []display.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		kind := "external"
		if rec.IsBuiltIn {
			kind = "built-in"
		}
		current := rec.CurrentMode.String()
		if rec.CurrentMode.IsZero() {
			current = "unknown"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Name,
			kind,
			current,
			fmt.Sprintf("%d", len(rec.SupportedModes)),
			string(display.RecommendedMethod(rec)),
		})
	}
	return rows
}
