// Package report renders analysis metrics for non-interactive output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/textmeter/internal/analyzer"
	"github.com/verte-zerg/textmeter/internal/model"
)

const (
	terminalWidthBackup = 80
	minBarWidth         = 10
	maxBarWidth         = 40
	barFill             = "#"
	barEmpty            = "."
	colorWarn           = "\x1b[31m"
	colorBar            = "\x1b[36m"
	colorReset          = "\x1b[0m"

	// EmptyDensityMessage is shown when the text has no A-Z letters.
	EmptyDensityMessage = "No characters found. Start typing to see letter density."
	// LimitWarningMessage is shown when the soft character limit is exceeded.
	LimitWarningMessage = "Limit reached! Your text exceeds the character limit."
)

// Options controls text rendering.
type Options struct {
	// Width is the total output width; <= 0 uses the terminal width.
	Width int
	// Color forces ANSI color on or off; nil decides from the writer.
	Color *bool
	// Limit is echoed in the warning line when exceeded.
	Limit int
}

// WriteText renders metrics as an aligned summary table followed by the
// letter density bars.
func WriteText(w io.Writer, m model.Metrics, opts Options) error {
	useColor := shouldUseColor(w, opts.Color)
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(w)
	}

	var lines []string
	if m.LimitExceeded {
		warning := LimitWarningMessage
		if opts.Limit > 0 {
			warning = fmt.Sprintf("%s (%d)", warning, opts.Limit)
		}
		lines = append(lines, colorize(warning, colorWarn, useColor), "")
	}

	rows := [][]string{
		{"Characters", strconv.Itoa(m.CharacterCount)},
		{"Words", strconv.Itoa(m.WordCount)},
		{"Sentences", strconv.Itoa(m.SentenceCount)},
		{"Reading time", analyzer.ReadingTimeLabel(m) + " min"},
	}
	lines = append(lines, formatTable(nil, rows, map[int]bool{1: true})...)
	lines = append(lines, "", "Letter density")
	lines = append(lines, DensityLines(m.LetterDensity, width, useColor)...)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// WriteJSON renders metrics as indented JSON.
func WriteJSON(w io.Writer, m model.Metrics) error {
	if m.LetterDensity == nil {
		m.LetterDensity = []model.DensityEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	return nil
}

// DensityLines renders one bar per density entry, or the empty-state message.
func DensityLines(entries []model.DensityEntry, width int, useColor bool) []string {
	if len(entries) == 0 {
		return []string{EmptyDensityMessage}
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.Letter), "", fmt.Sprintf("%d (%s%%)", e.Count, e.Label())})
	}
	valueWidth := 0
	for _, row := range rows {
		if n := len(row[2]); n > valueWidth {
			valueWidth = n
		}
	}
	barWidth := BarWidthFor(width, valueWidth)
	for i, e := range entries {
		rows[i][1] = colorize(Bar(e.Percentage, barWidth), colorBar, useColor)
	}
	return formatTable(nil, rows, map[int]bool{2: true})
}

// BarWidthFor returns the bar width that fits a line of total width next to
// a letter column and a value column of valueWidth.
func BarWidthFor(total, valueWidth int) int {
	width := total - valueWidth - 5
	if width > maxBarWidth {
		width = maxBarWidth
	}
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// Bar renders a percentage as a fixed-width bar.
func Bar(percentage float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percentage/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat(barFill, filled) + strings.Repeat(barEmpty, width-filled) + "]"
}

func colorize(s, code string, enabled bool) string {
	if !enabled {
		return s
	}
	return code + s + colorReset
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force *bool) bool {
	if force != nil {
		return *force
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
