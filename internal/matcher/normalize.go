package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: lowercase, accents folded to
// their base letter, everything outside [a-z0-9] turned into a space, and
// whitespace collapsed and trimmed. It is total and idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	// transform.Chain keeps state, so each call gets its own.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(folder, lowered)
	if err != nil {
		folded = lowered
	}

	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(mapped), " ")
}
