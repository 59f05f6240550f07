package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textmeter/internal/model"
	"github.com/verte-zerg/textmeter/internal/report"
)

func (s styles) metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", s.cardTitle.Render(label), s.cardValue.Render(value))
	return s.card.Render(content)
}

func (s styles) densityLines(entries []model.DensityEntry, width int) []string {
	if len(entries) == 0 {
		return []string{s.muted.Render(report.EmptyDensityMessage)}
	}
	values := make([]string, len(entries))
	valueWidth := 0
	for i, e := range entries {
		values[i] = fmt.Sprintf("%d (%s%%)", e.Count, e.Label())
		if w := runewidth.StringWidth(values[i]); w > valueWidth {
			valueWidth = w
		}
	}
	barWidth := report.BarWidthFor(width, valueWidth)
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			s.densityChar.Render(string(e.Letter)),
			s.densityBar.Render(report.Bar(e.Percentage, barWidth)),
			runewidth.FillLeft(values[i], valueWidth),
		))
	}
	return lines
}

func (s styles) toggle(label string, on bool) string {
	if on {
		return s.toggleOn.Render("[x] " + label)
	}
	return s.footer.Render("[ ] " + label)
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
