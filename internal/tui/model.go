// Package tui provides the Bubble Tea text analysis interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textmeter/internal/analyzer"
	"github.com/verte-zerg/textmeter/internal/animate"
	"github.com/verte-zerg/textmeter/internal/model"
	"github.com/verte-zerg/textmeter/internal/report"
)

const (
	frameInterval = time.Second / 60
	minTextHeight = 3
	// Rows used by everything except the text area.
	chromeHeight = 17
)

const (
	focusText = iota
	focusLimit
)

const (
	counterChars = iota
	counterWords
	counterSentences
	counterCount
)

// ThemeSaver persists the theme preference.
type ThemeSaver interface {
	SetTheme(ctx context.Context, theme model.Theme) error
}

// Options configures the initial state of the UI.
type Options struct {
	ExcludeSpaces bool
	LimitEnabled  bool
	Limit         int
	Theme         model.Theme
	// AnimationDuration of zero uses animate.DefaultDuration.
	AnimationDuration time.Duration
}

type frameMsg struct {
	id int
	at time.Time
}

// Model implements the Bubble Tea analysis UI.
type Model struct {
	prefs ThemeSaver
	now   func() time.Time

	theme  model.Theme
	styles styles

	text       textarea.Model
	limitInput textinput.Model
	focus      int

	excludeSpaces bool
	limitEnabled  bool

	metrics   model.Metrics
	counters  [counterCount]animate.Animator
	displayed [counterCount]int
	frameID   int

	width  int
	height int
}

// NewModel constructs the analysis UI. prefs may be nil, in which case theme
// changes are not persisted.
func NewModel(opts Options, prefs ThemeSaver) *Model {
	duration := opts.AnimationDuration
	if duration == 0 {
		duration = animate.DefaultDuration
	}
	m := &Model{
		prefs:         prefs,
		now:           time.Now,
		theme:         model.ParseTheme(string(opts.Theme)),
		excludeSpaces: opts.ExcludeSpaces,
		limitEnabled:  opts.LimitEnabled,
	}
	m.styles = newStyles(m.theme)
	for i := range m.counters {
		m.counters[i] = animate.NewCounter(0, duration)
	}

	m.text = textarea.New()
	m.text.Placeholder = "Start typing here... (or paste your text)"
	m.text.ShowLineNumbers = false
	m.text.CharLimit = 0
	m.text.MaxHeight = 0
	m.text.Prompt = ""
	m.text.Focus()

	m.limitInput = textinput.New()
	m.limitInput.Prompt = "Character limit: "
	m.limitInput.Placeholder = "e.g. 280"
	m.limitInput.CharLimit = 9
	if opts.Limit > 0 {
		m.limitInput.SetValue(fmt.Sprintf("%d", opts.Limit))
	}

	m.metrics = analyzer.Analyze("", m.analysisConfig())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Metrics returns the metrics of the current text.
func (m *Model) Metrics() model.Metrics {
	return m.metrics
}

// Theme returns the active theme.
func (m *Model) Theme() model.Theme {
	return m.theme
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case frameMsg:
		return m, m.handleFrame(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		m.excludeSpaces = !m.excludeSpaces
		return m, m.reanalyze()
	case "ctrl+l":
		m.limitEnabled = !m.limitEnabled
		if m.limitEnabled {
			m.setFocus(focusLimit)
		} else {
			m.setFocus(focusText)
		}
		return m, m.reanalyze()
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	case "tab":
		if m.limitEnabled {
			if m.focus == focusText {
				m.setFocus(focusLimit)
			} else {
				m.setFocus(focusText)
			}
			return m, nil
		}
	case "enter":
		if m.focus == focusLimit {
			m.setFocus(focusText)
			return m, nil
		}
	}
	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusLimit {
		before := m.limitInput.Value()
		m.limitInput, cmd = m.limitInput.Update(msg)
		if m.limitInput.Value() != before {
			return tea.Batch(cmd, m.reanalyze())
		}
		return cmd
	}
	before := m.text.Value()
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		return tea.Batch(cmd, m.reanalyze())
	}
	return cmd
}

func (m *Model) setFocus(field int) {
	m.focus = field
	if field == focusLimit {
		m.text.Blur()
		m.limitInput.Focus()
		return
	}
	m.limitInput.Blur()
	m.text.Focus()
}

func (m *Model) analysisConfig() model.AnalysisConfig {
	cfg := model.AnalysisConfig{ExcludeSpaces: m.excludeSpaces}
	if m.limitEnabled {
		cfg.CharacterLimit = analyzer.ParseLimit(m.limitInput.Value())
	}
	return cfg
}

// reanalyze recomputes metrics and retargets the counters. The returned
// command starts a new frame loop that supersedes any running one.
func (m *Model) reanalyze() tea.Cmd {
	m.metrics = analyzer.Analyze(m.text.Value(), m.analysisConfig())
	now := m.now()
	targets := [counterCount]int{
		counterChars:     m.metrics.CharacterCount,
		counterWords:     m.metrics.WordCount,
		counterSentences: m.metrics.SentenceCount,
	}
	for i, c := range m.counters {
		c.Set(targets[i], now)
		m.displayed[i] = c.Value(now)
	}
	if m.countersDone(now) {
		return nil
	}
	m.frameID++
	return frameTick(m.frameID)
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != m.frameID {
		return nil
	}
	for i, c := range m.counters {
		m.displayed[i] = c.Value(msg.at)
	}
	if m.countersDone(msg.at) {
		return nil
	}
	return frameTick(msg.id)
}

func (m *Model) countersDone(now time.Time) bool {
	for _, c := range m.counters {
		if !c.Done(now) {
			return false
		}
	}
	return true
}

func frameTick(id int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, at: t}
	})
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	if m.prefs == nil {
		return
	}
	if err := m.prefs.SetTheme(context.Background(), m.theme); err != nil {
		logErrf("failed to save theme: %v\n", err)
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	frame := m.styles.input.GetHorizontalFrameSize()
	m.text.SetWidth(maxInt(10, m.width-frame))
	m.text.SetHeight(maxInt(minTextHeight, m.height-chromeHeight))
	promptWidth := lipgloss.Width(m.limitInput.Prompt)
	m.limitInput.Width = maxInt(10, m.width-frame-promptWidth-1)
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	sections := []string{m.renderHeader(width)}
	sections = append(sections, m.renderInput())
	if m.limitEnabled {
		sections = append(sections, m.renderLimitInput())
	}
	if m.metrics.LimitExceeded {
		sections = append(sections, m.styles.warning.Render(report.LimitWarningMessage))
	}
	sections = append(sections, m.renderCards(width))
	sections = append(sections, m.styles.title.Render("Letter Density"))
	sections = append(sections, strings.Join(m.styles.densityLines(m.metrics.LetterDensity, width), "\n"))
	sections = append(sections, m.renderFooter(width))
	view := strings.Join(sections, "\n")
	if m.height <= 0 {
		return view
	}
	return fitLines(view, m.width, m.height)
}

func (m *Model) renderHeader(width int) string {
	title := m.styles.title.Render("textmeter")
	theme := m.styles.muted.Render(fmt.Sprintf("theme: %s", m.theme))
	gap := width - lipgloss.Width(title) - lipgloss.Width(theme)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + theme
}

func (m *Model) renderInput() string {
	style := m.styles.input
	switch {
	case m.metrics.LimitExceeded:
		style = m.styles.inputWarn
	case m.focus == focusText:
		style = m.styles.inputFocus
	}
	return style.Render(m.text.View())
}

func (m *Model) renderLimitInput() string {
	style := m.styles.input
	if m.focus == focusLimit {
		style = m.styles.inputFocus
	}
	return style.Render(m.limitInput.View())
}

func (m *Model) renderCards(width int) string {
	cards := []string{
		m.styles.metricCard("Total Characters", fmt.Sprintf("%d", m.displayed[counterChars])),
		m.styles.metricCard("Word Count", fmt.Sprintf("%d", m.displayed[counterWords])),
		m.styles.metricCard("Sentence Count", fmt.Sprintf("%d", m.displayed[counterSentences])),
		m.styles.metricCard("Reading Time", analyzer.ReadingTimeLabel(m.metrics)+" min"),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
	)
}

func (m *Model) renderFooter(width int) string {
	segments := []string{
		m.styles.toggle("Exclude spaces (ctrl+s)", m.excludeSpaces),
		m.styles.toggle("Character limit (ctrl+l)", m.limitEnabled),
	}
	help := "tab: focus  ctrl+t: theme  esc: quit"
	if !m.limitEnabled {
		help = "ctrl+t: theme  esc: quit"
	}
	segments = append(segments, m.styles.footer.Render(help))
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(segments, "  "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
