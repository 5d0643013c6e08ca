// Package genre provides genre name normalization.
package genre

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts a genre name to a URL-safe slug: "Science Fiction" ->
// "science-fiction", "Sci-Fi/Fantasy" -> "sci-fi-fantasy". Accented
// characters are reduced to their ASCII base; runs of separators collapse
// into a single hyphen.
func Slugify(s string) string {
	// Decompose accented characters so the base letter survives the
	// ASCII filter below.
	s = strings.ToLower(norm.NFKD.String(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		case r > unicode.MaxASCII:
			// Combining marks and other non-ASCII drop out entirely.
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
