package analyzer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/textmeter/internal/model"
)

func TestAnalyzeHelloWorld(t *testing.T) {
	m := Analyze("Hello world", model.AnalysisConfig{})
	if m.CharacterCount != 11 {
		t.Fatalf("expected 11 chars, got %d", m.CharacterCount)
	}
	if m.WordCount != 2 {
		t.Fatalf("expected 2 words, got %d", m.WordCount)
	}
	if m.SentenceCount != 1 {
		t.Fatalf("expected 1 sentence, got %d", m.SentenceCount)
	}
	if m.ReadingTimeMinutes != 1 || !m.HasWords {
		t.Fatalf("expected reading time 1 with words, got %d (%v)", m.ReadingTimeMinutes, m.HasWords)
	}
	if m.LimitExceeded {
		t.Fatalf("expected no limit warning without a limit")
	}
}

func TestAnalyzeEmptyAndBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \r\n", " 　"} {
		m := Analyze(text, model.AnalysisConfig{})
		if m.WordCount != 0 || m.SentenceCount != 0 || m.ReadingTimeMinutes != 0 {
			t.Fatalf("%q: expected zero counts, got %+v", text, m)
		}
		if m.HasWords {
			t.Fatalf("%q: expected HasWords false", text)
		}
		if len(m.LetterDensity) != 0 {
			t.Fatalf("%q: expected empty density, got %v", text, m.LetterDensity)
		}
		if m.CharacterCount != Length(text) {
			t.Fatalf("%q: expected raw length %d, got %d", text, Length(text), m.CharacterCount)
		}
	}
}

func TestAnalyzeExcludeSpaces(t *testing.T) {
	text := " a b\tc\n\nd  "
	with := Analyze(text, model.AnalysisConfig{})
	without := Analyze(text, model.AnalysisConfig{ExcludeSpaces: true})
	if with.CharacterCount != 11 {
		t.Fatalf("expected 11 chars, got %d", with.CharacterCount)
	}
	if without.CharacterCount != 4 {
		t.Fatalf("expected 4 chars without spaces, got %d", without.CharacterCount)
	}
	if with.WordCount != 4 || without.WordCount != 4 {
		t.Fatalf("exclude-spaces must not change word count")
	}
}

func TestAnalyzeSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Hi! Bye.", 2},
		{"One. Two? Three!", 3},
		{"Wait...what?!", 2},
		{"...", 0},
		{"  . ! ?  ", 0},
		{"no terminator", 1},
		{"trailing.  ", 1},
	}
	for _, tc := range tests {
		if got := Analyze(tc.text, model.AnalysisConfig{}).SentenceCount; got != tc.want {
			t.Fatalf("%q: expected %d sentences, got %d", tc.text, tc.want, got)
		}
	}
}

func TestAnalyzeWordsCollapseWhitespace(t *testing.T) {
	m := Analyze("  one \t two\n\nthree  ", model.AnalysisConfig{})
	if m.WordCount != 3 {
		t.Fatalf("expected 3 words, got %d", m.WordCount)
	}
}

func TestAnalyzeLimit(t *testing.T) {
	text := "hello world"
	tests := []struct {
		limit int
		want  bool
	}{
		{0, false},
		{-5, false},
		{11, false},
		{10, true},
		{1, true},
	}
	for _, tc := range tests {
		m := Analyze(text, model.AnalysisConfig{CharacterLimit: tc.limit})
		if m.LimitExceeded != tc.want {
			t.Fatalf("limit %d: expected exceeded=%v", tc.limit, tc.want)
		}
	}
}

func TestAnalyzeLimitUsesRawLength(t *testing.T) {
	m := Analyze("a b c d", model.AnalysisConfig{ExcludeSpaces: true, CharacterLimit: 5})
	if m.CharacterCount != 4 {
		t.Fatalf("expected 4 chars, got %d", m.CharacterCount)
	}
	if !m.LimitExceeded {
		t.Fatalf("expected limit to be checked against the raw length")
	}
}

func TestAnalyzeDensityTies(t *testing.T) {
	m := Analyze("aaaa bbbb", model.AnalysisConfig{})
	want := []model.DensityEntry{
		{Letter: 'A', Count: 4, Percentage: 50},
		{Letter: 'B', Count: 4, Percentage: 50},
	}
	if diff := cmp.Diff(want, m.LetterDensity); diff != "" {
		t.Fatalf("density mismatch (-want +got):\n%s", diff)
	}
}

func TestLetterDensityTopFiveEncounterOrder(t *testing.T) {
	got := LetterDensity("zyxwvu zz yy")
	want := []model.DensityEntry{
		{Letter: 'Z', Count: 3, Percentage: 30},
		{Letter: 'Y', Count: 3, Percentage: 30},
		{Letter: 'X', Count: 1, Percentage: 10},
		{Letter: 'W', Count: 1, Percentage: 10},
		{Letter: 'V', Count: 1, Percentage: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("density mismatch (-want +got):\n%s", diff)
	}
}

func TestLetterDensityRounding(t *testing.T) {
	got := LetterDensity("abb")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Letter != 'B' || got[0].Label() != "66.67" {
		t.Fatalf("unexpected first entry: %c %s", got[0].Letter, got[0].Label())
	}
	if got[1].Letter != 'A' || got[1].Label() != "33.33" {
		t.Fatalf("unexpected second entry: %c %s", got[1].Letter, got[1].Label())
	}
}

func TestLetterDensityIgnoresNonASCII(t *testing.T) {
	if got := LetterDensity("123 !? éü 漢字"); len(got) != 0 {
		t.Fatalf("expected no density, got %v", got)
	}
	got := LetterDensity("straße")
	var s int
	for _, e := range got {
		if e.Letter == 'S' {
			s = e.Count
		}
	}
	if s != 3 {
		t.Fatalf("expected full case mapping to yield 3 S, got %d", s)
	}
}

func TestReadingTime(t *testing.T) {
	tests := map[int]int{0: 0, 1: 1, 200: 1, 201: 2, 400: 2, 401: 3}
	for words, want := range tests {
		if got := ReadingTime(words); got != want {
			t.Fatalf("%d words: expected %d, got %d", words, want, got)
		}
	}
	m := Analyze(strings.Repeat("word ", 201), model.AnalysisConfig{})
	if m.WordCount != 201 || m.ReadingTimeMinutes != 2 {
		t.Fatalf("expected 201 words and 2 minutes, got %d and %d", m.WordCount, m.ReadingTimeMinutes)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	cfg := model.AnalysisConfig{ExcludeSpaces: true, CharacterLimit: 20}
	text := "The quick brown fox. Jumps over the lazy dog!"
	first := Analyze(text, cfg)
	second := Analyze(text, cfg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated analysis differs:\n%s", diff)
	}
}

func TestLengthCountsUTF16Units(t *testing.T) {
	if got := Length("héllo"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := Length("a😀"); got != 3 {
		t.Fatalf("expected surrogate pair to count as 2, got %d", got)
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x00A0, 0xFEFF, 0x2028, 0x2029, 0x3000, 0x2003} {
		if !IsSpace(r) {
			t.Fatalf("expected %U to be whitespace", r)
		}
	}
	for _, r := range []rune{'a', '.', 0x0085, 0x200B} {
		if IsSpace(r) {
			t.Fatalf("expected %U not to be whitespace", r)
		}
	}
}
