// Package normalize builds comparison keys for deduplicating catalog records.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text normalizes a display string for comparison: unicode-decomposed with
// combining marks dropped ("Café" and "Cafe" compare equal), lowercased,
// punctuation replaced by spaces, and whitespace collapsed.
func Text(s string) string {
	// Decompose accented characters, then drop the combining marks.
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)

	// Punctuation and symbols become spaces so "sci-fi" matches "sci fi".
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// TitleAuthorKey returns the dedupe key for a (title, authors) pair. Two
// catalog records with the same key are the same book for display purposes,
// regardless of casing, punctuation, or accents.
func TitleAuthorKey(title, authors string) string {
	return Text(title) + "|" + Text(authors)
}
