// Package model defines shared data structures.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnalysisConfig defines the options applied to a single analysis.
// A CharacterLimit <= 0 means no limit.
type AnalysisConfig struct {
	ExcludeSpaces  bool
	CharacterLimit int
}

// LimitActive reports whether a soft character limit is configured.
func (c AnalysisConfig) LimitActive() bool {
	return c.CharacterLimit > 0
}

// Metrics is the result of analyzing a text.
type Metrics struct {
	CharacterCount     int            `json:"characterCount"`
	WordCount          int            `json:"wordCount"`
	SentenceCount      int            `json:"sentenceCount"`
	ReadingTimeMinutes int            `json:"readingTimeMinutes"`
	HasWords           bool           `json:"hasWords"`
	LimitExceeded      bool           `json:"limitExceeded"`
	LetterDensity      []DensityEntry `json:"letterDensity"`
}

// DensityEntry is one ranked row of the letter density table.
type DensityEntry struct {
	Letter     rune    `json:"-"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Label formats the percentage with two decimals.
func (e DensityEntry) Label() string {
	return fmt.Sprintf("%.2f", e.Percentage)
}

// MarshalJSON renders the letter as a string rather than a code point.
func (e DensityEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter     string  `json:"letter"`
		Count      int     `json:"count"`
		Percentage float64 `json:"percentage"`
	}{
		Letter:     string(e.Letter),
		Count:      e.Count,
		Percentage: e.Percentage,
	})
}

// Theme is the persisted color scheme preference.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value to a Theme. Unknown values fall back to dark.
func ParseTheme(value string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(value))) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// ValidTheme reports whether value names a supported theme.
func ValidTheme(value string) bool {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
