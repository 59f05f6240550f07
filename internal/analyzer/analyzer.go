// Package analyzer computes live text statistics.
package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/textmeter/internal/model"
)

const (
	// WordsPerMinute is the fixed reading speed used for reading time.
	WordsPerMinute = 200
	// DensityTop is the number of letters kept in the density table.
	DensityTop = 5
)

// Analyze derives metrics from text. It never fails: invalid limits mean no limit.
func Analyze(text string, cfg model.AnalysisConfig) model.Metrics {
	var m model.Metrics
	if cfg.LimitActive() {
		m.LimitExceeded = Length(text) > cfg.CharacterLimit
	}

	if cfg.ExcludeSpaces {
		m.CharacterCount = Length(stripSpaces(text))
	} else {
		m.CharacterCount = Length(text)
	}

	trimmed := strings.TrimFunc(text, IsSpace)
	if trimmed != "" {
		m.WordCount = len(strings.FieldsFunc(trimmed, IsSpace))
		// Sentences are split on the untrimmed text.
		m.SentenceCount = countSentences(text)
	}

	m.ReadingTimeMinutes = ReadingTime(m.WordCount)
	m.HasWords = m.WordCount > 0
	m.LetterDensity = LetterDensity(text)
	return m
}

// Length returns the UTF-16 code unit length of s.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

// IsSpace reports whether r is whitespace in the ECMAScript sense.
// It differs from unicode.IsSpace in including U+FEFF and excluding U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0xFEFF, 0x2028, 0x2029:
		return true
	case 0x0085:
		return false
	}
	return unicode.Is(unicode.Zs, r)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func countSentences(text string) int {
	count := 0
	for _, segment := range strings.FieldsFunc(text, isTerminator) {
		if strings.TrimFunc(segment, IsSpace) != "" {
			count++
		}
	}
	return count
}

// ReadingTime returns the estimated reading time in whole minutes, rounded up.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// LetterDensity ranks the A-Z letters of text by frequency. Equal counts keep
// first-encounter order.
func LetterDensity(text string) []model.DensityEntry {
	upper := cases.Upper(language.Und).String(text)

	var order []rune
	counts := map[rune]int{}
	total := 0
	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			continue
		}
		if _, ok := counts[r]; !ok {
			order = append(order, r)
		}
		counts[r]++
		total++
	}
	if total == 0 {
		return nil
	}

	entries := make([]model.DensityEntry, 0, len(order))
	for _, r := range order {
		entries = append(entries, model.DensityEntry{Letter: r, Count: counts[r]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > DensityTop {
		entries = entries[:DensityTop]
	}
	for i := range entries {
		entries[i].Percentage = roundPercent(entries[i].Count, total)
	}
	return entries
}

func roundPercent(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
