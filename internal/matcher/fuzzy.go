package matcher

import (
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2/search"
)

// Edit-distance backends selectable at startup.
const (
	BackendLevenshtein = "levenshtein"
	BackendLength      = "length"
)

// Distance computes an edit distance between two normalized strings.
type Distance interface {
	Name() string
	Distance(a, b string) int
}

// levenshteinDistance counts single-character inserts, deletes and
// substitutions. bleve compares bytes, which matches characters because
// normalized text is ASCII.
type levenshteinDistance struct{}

func (levenshteinDistance) Name() string { return BackendLevenshtein }

func (levenshteinDistance) Distance(a, b string) int {
	return search.LevenshteinDistance(a, b)
}

// lengthDistance is the degraded metric: the absolute length difference.
type lengthDistance struct{}

func (lengthDistance) Name() string { return BackendLength }

func (lengthDistance) Distance(a, b string) int {
	d := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if d < 0 {
		return -d
	}
	return d
}

// Levenshtein returns the primary edit-distance strategy.
func Levenshtein() Distance { return levenshteinDistance{} }

// LengthDelta returns the degraded edit-distance strategy.
func LengthDelta() Distance { return lengthDistance{} }

// SelectDistance resolves a backend name. Unknown names fall back to the
// degraded strategy and report ok=false so the caller can log it.
func SelectDistance(backend string) (d Distance, ok bool) {
	switch backend {
	case "", BackendLevenshtein:
		return levenshteinDistance{}, true
	case BackendLength:
		return lengthDistance{}, true
	default:
		return lengthDistance{}, false
	}
}

// FuzzyScore is 1 - distance/max(1, len(candidate)). The denominator is the
// candidate's length, so the score is not symmetric and can drop below zero.
func FuzzyScore(d Distance, query, candidate string) float64 {
	denom := max(1, utf8.RuneCountInString(candidate))
	return 1 - float64(d.Distance(query, candidate))/float64(denom)
}
