package matcher

// Confidence thresholds applied to the top candidate's final score.
const (
	HighConfidence = 0.80
	MidConfidence  = 0.55
)

// DefaultTopK is the number of candidates ranked per query.
const DefaultTopK = 3

// Classify maps ranked candidates to a response. The top candidate is the
// first one in the list, i.e. the lexically best. Candidates without an entry
// are ignored.
func Classify(candidates []Candidate, entries map[int64]Entry) Response {
	present := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := entries[c.ID]; ok {
			present = append(present, c)
		}
	}

	if len(present) == 0 {
		return Response{
			Answer:      EmptyMessage,
			Intent:      IntentEmpty,
			Confidence:  0,
			Suggestions: []string{},
		}
	}

	top := present[0]
	final := top.FinalScore

	switch {
	case final >= HighConfidence:
		return Response{
			Answer:      entries[top.ID].Answer,
			Intent:      IntentFAQ,
			Confidence:  final,
			Suggestions: []string{},
		}
	case final >= MidConfidence:
		return Response{
			Answer:      entries[top.ID].Answer,
			Intent:      IntentFAQSuggest,
			Confidence:  final,
			Suggestions: suggestions(present, entries),
		}
	default:
		return Response{
			Answer:      FallbackMessage,
			Intent:      IntentFallback,
			Confidence:  final,
			Suggestions: suggestions(present, entries),
		}
	}
}

func suggestions(candidates []Candidate, entries map[int64]Entry) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, entries[c.ID].Question)
	}
	return out
}
