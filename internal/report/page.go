package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type row struct {
	label string
	value string
}

// renderPage draws a titled box with one aligned label/value pair per row.
func renderPage(title string, rows []row) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), r.value))
	}

	body := strings.Join(lines, "\n")
	if body == "" {
		body = "-"
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", body))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
