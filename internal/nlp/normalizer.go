// Package nlp turns a Spanish report request into a structured query.
//
// The pipeline is pure: Normalize, then date resolution, classification and
// filter extraction over the same Text, then summary composition. All lookup
// tables are package-level and never mutated, so an Interpreter can be shared
// between goroutines.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text is one request in both its verbatim and canonical forms.
type Text struct {
	Original   string
	Normalized string
	Tokens     []string
}

// NewText normalizes raw and splits it into tokens.
func NewText(raw string) Text {
	normalized := Normalize(raw)
	return Text{
		Original:   raw,
		Normalized: normalized,
		Tokens:     strings.Fields(normalized),
	}
}

// Normalize lower-cases s, strips diacritics, turns punctuation into spaces
// and collapses whitespace. Dots and commas between two digits survive so
// amounts like "1.500,50" stay intact.
func Normalize(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	runes := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		runes = append(runes, r)
	}

	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case (r == '.' || r == ',') && i > 0 && i < len(runes)-1 &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// phraseIndex returns the token index where phrase starts, or -1.
func phraseIndex(tokens []string, phrase ...string) int {
	if len(phrase) == 0 {
		return -1
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
