package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text (NFD) and removes the combining diacritical
// marks, leaving bare base characters behind.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize canonicalizes free text for comparison. Accents are stripped,
// letters are lowercased, and every run of characters outside [a-z0-9]
// becomes a single space. The result contains only lowercase ASCII letters,
// digits, and single interior spaces, with no leading or trailing space.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	folded, _, _ := transform.String(stripMarks, text)
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	prevSpace := true
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevSpace = false
		default:
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Tokenize splits text into normalized word tokens. Input that normalizes to
// the empty string (including all-punctuation input) yields no tokens.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// Acronym returns the concatenated first letters of each normalized token,
// e.g. "My Hero Academia" -> "mha". Returns the empty string when text has
// no tokens.
func Acronym(text string) string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(tokens))
	for _, token := range tokens {
		b.WriteByte(token[0])
	}
	return b.String()
}
