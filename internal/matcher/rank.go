package matcher

// Blend weights.
const (
	LexicalWeight = 0.8
	FuzzyWeight   = 0.2
)

// Blend fills fuzzy and final scores for lexical candidates. The input order
// is kept as is: the first candidate has the best lexical score, not
// necessarily the best final score.
func Blend(normalizedQuery string, candidates []Candidate, d Distance) []Candidate {
	out := make([]Candidate, len(candidates))
	for i, c := range candidates {
		c.FuzzyScore = FuzzyScore(d, normalizedQuery, c.Question)
		c.FinalScore = LexicalWeight*c.LexicalScore + FuzzyWeight*c.FuzzyScore
		out[i] = c
	}
	return out
}
