package matcher

// Intent labels the kind of answer a query produced.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentClosing    Intent = "closing"
	IntentFAQ        Intent = "faq"
	IntentFAQSuggest Intent = "faq_suggest"
	IntentFallback   Intent = "fallback"
	IntentEmpty      Intent = "empty"
)

// Fixed replies for responses that do not come from the corpus.
const (
	GreetingMessage = "¡Hola! Pregúntame sobre contraseñas, facturas, precios o ventas."
	ClosingMessage  = "¡Con gusto! Si necesitas algo más, aquí estoy."
	EmptyMessage    = "No tengo respuestas aún."
	FallbackMessage = "No comprendí bien tu consulta. ¿Te refieres a alguna de estas?"
)

// Document is one corpus entry as seen by the index.
type Document struct {
	ID       int64
	Question string
}

// Entry is a stored question/answer pair used to render a response.
type Entry struct {
	ID       int64
	Question string
	Answer   string
}

// Candidate is a scored corpus entry for a single query.
type Candidate struct {
	// ID is the FAQ entry id.
	ID int64 `json:"id"`
	// Question is the normalized stored question.
	Question string `json:"question"`
	// LexicalScore is the cosine similarity in TF-IDF space.
	LexicalScore float64 `json:"lexical_score"`
	// FuzzyScore is the normalized edit-distance similarity. It can be negative.
	FuzzyScore float64 `json:"fuzzy_score"`
	// FinalScore blends lexical and fuzzy scores.
	FinalScore float64 `json:"final_score"`
}

// Response is the graded answer to a user message.
type Response struct {
	Answer      string     `json:"answer"`
	Intent      Intent     `json:"intent"`
	Confidence  float64    `json:"confidence"`
	Suggestions []string   `json:"suggestions"`
	Debug       *DebugInfo `json:"debug,omitempty"`
}

// DebugInfo describes how a corpus response was produced.
type DebugInfo struct {
	// Generation identifies the index build that served the query.
	Generation uint64 `json:"index_generation"`
	// CorpusSize is the number of documents in that build.
	CorpusSize int `json:"corpus_size"`
	// DistanceBackend names the edit-distance strategy in use.
	DistanceBackend string `json:"distance_backend"`
	// Candidates are the ranked candidates in lexical order.
	Candidates []Candidate `json:"candidates"`
	// Cached reports whether the response came from the response cache.
	Cached bool `json:"cached"`
}

func (r Response) clone() Response {
	out := r
	out.Suggestions = append([]string{}, r.Suggestions...)
	if r.Debug != nil {
		d := *r.Debug
		d.Candidates = append([]Candidate{}, r.Debug.Candidates...)
		out.Debug = &d
	}
	return out
}
