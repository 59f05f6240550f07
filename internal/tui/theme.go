package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textmeter/internal/model"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	warn   lipgloss.Color
	border lipgloss.Color
	focus  lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeDark: {
		text:   lipgloss.Color("#F0F0F0"),
		muted:  lipgloss.Color("#8C8C8C"),
		accent: lipgloss.Color("#C89A3A"),
		warn:   lipgloss.Color("#FF5252"),
		border: lipgloss.Color("#4A4A4A"),
		focus:  lipgloss.Color("#C89A3A"),
	},
	model.ThemeLight: {
		text:   lipgloss.Color("#1F1F1F"),
		muted:  lipgloss.Color("#6E6E6E"),
		accent: lipgloss.Color("#8A5A00"),
		warn:   lipgloss.Color("#D32F2F"),
		border: lipgloss.Color("#BDBDBD"),
		focus:  lipgloss.Color("#8A5A00"),
	},
}

type styles struct {
	title       lipgloss.Style
	muted       lipgloss.Style
	input       lipgloss.Style
	inputFocus  lipgloss.Style
	inputWarn   lipgloss.Style
	warning     lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	cardValue   lipgloss.Style
	densityChar lipgloss.Style
	densityBar  lipgloss.Style
	footer      lipgloss.Style
	toggleOn    lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[model.ThemeDark]
	}
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.border).
		Padding(0, 1)
	return styles{
		title:       lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		muted:       lipgloss.NewStyle().Foreground(p.muted),
		input:       input,
		inputFocus:  input.BorderForeground(p.focus),
		inputWarn:   input.BorderForeground(p.warn),
		warning:     lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		card:        lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(p.border),
		cardTitle:   lipgloss.NewStyle().Foreground(p.muted),
		cardValue:   lipgloss.NewStyle().Foreground(p.text).Bold(true),
		densityChar: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		densityBar:  lipgloss.NewStyle().Foreground(p.accent),
		footer:      lipgloss.NewStyle().Foreground(p.muted),
		toggleOn:    lipgloss.NewStyle().Foreground(p.accent),
	}
}
