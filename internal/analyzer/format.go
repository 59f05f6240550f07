package analyzer

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/textmeter/internal/model"
)

// ParseLimit reads a character limit the way a form field would: leading
// whitespace and sign are accepted, trailing garbage after the digits is
// ignored. Anything that does not yield a positive integer returns 0.
func ParseLimit(s string) int {
	s = strings.TrimLeftFunc(s, IsSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of range for int; no text can be that long anyway.
		return 0
	}
	return n
}

// ReadingTimeLabel renders the reading time: "0" for no words, otherwise "<N".
func ReadingTimeLabel(m model.Metrics) string {
	if !m.HasWords {
		return "0"
	}
	return "<" + strconv.Itoa(m.ReadingTimeMinutes)
}
