package matcher

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Index is an immutable TF-IDF vector space over a corpus snapshot.
// ids, questions and vectors are parallel slices in snapshot order.
type Index struct {
	generation uint64
	ids        []int64
	questions  []string
	vocab      map[string]int
	idf        []float64
	vectors    [][]float64
}

// SparseVector is the non-zero part of one document vector.
type SparseVector struct {
	ID       int64
	Question string
	Indices  []uint32
	Values   []float64
}

// Build fits a unigram+bigram TF-IDF space (smoothed idf, no pruning) over the
// normalized questions. An empty snapshot yields an index with no vectors.
func Build(docs []Document) *Index {
	if len(docs) == 0 {
		return &Index{}
	}

	idx := &Index{
		ids:       make([]int64, len(docs)),
		questions: make([]string, len(docs)),
		vectors:   make([][]float64, len(docs)),
	}

	grams := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		idx.ids[i] = doc.ID
		idx.questions[i] = Normalize(doc.Question)
		grams[i] = ngrams(idx.questions[i])

		seen := make(map[string]struct{}, len(grams[i]))
		for _, g := range grams[i] {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			df[g]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idx.vocab = make(map[string]int, len(terms))
	idx.idf = make([]float64, len(terms))
	for i, term := range terms {
		idx.vocab[term] = i
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	for i := range docs {
		idx.vectors[i] = idx.vectorize(grams[i])
	}
	return idx
}

// Generation identifies the rebuild that produced the index. Zero means the
// index was built outside a Manager.
func (idx *Index) Generation() uint64 {
	return idx.generation
}

// Len returns the number of documents.
func (idx *Index) Len() int {
	return len(idx.ids)
}

// Empty reports whether the index holds no documents.
func (idx *Index) Empty() bool {
	return len(idx.vectors) == 0
}

// VocabularySize returns the number of fitted n-grams.
func (idx *Index) VocabularySize() int {
	return len(idx.vocab)
}

// Query scores text against every document and returns the best topK
// candidates by lexical score. Ties keep snapshot order. Fuzzy and final
// scores are left at zero.
func (idx *Index) Query(text string, topK int) []Candidate {
	if idx == nil || idx.Empty() || topK <= 0 {
		return []Candidate{}
	}

	query := idx.vectorize(ngrams(Normalize(text)))

	sims := make([]float64, len(idx.vectors))
	order := make([]int, len(idx.vectors))
	for i, vec := range idx.vectors {
		sims[i] = cosine(query, vec)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})

	k := min(topK, len(order))
	candidates := make([]Candidate, k)
	for rank, i := range order[:k] {
		candidates[rank] = Candidate{
			ID:           idx.ids[i],
			Question:     idx.questions[i],
			LexicalScore: sims[i],
		}
	}
	return candidates
}

// SparseVectors returns the non-zero weights of every document vector in
// snapshot order.
func (idx *Index) SparseVectors() []SparseVector {
	out := make([]SparseVector, len(idx.vectors))
	for i, vec := range idx.vectors {
		sv := SparseVector{ID: idx.ids[i], Question: idx.questions[i]}
		for j, w := range vec {
			if w != 0 {
				sv.Indices = append(sv.Indices, uint32(j))
				sv.Values = append(sv.Values, w)
			}
		}
		out[i] = sv
	}
	return out
}

// vectorize projects n-grams into the fitted space and L2-normalizes the
// result. Unknown n-grams are ignored.
func (idx *Index) vectorize(grams []string) []float64 {
	vec := make([]float64, len(idx.vocab))
	for _, g := range grams {
		if j, ok := idx.vocab[g]; ok {
			vec[j]++
		}
	}
	if len(vec) == 0 {
		return vec
	}
	floats.Mul(vec, idx.idf)
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// ngrams returns the unigrams followed by the bigrams of a normalized string.
func ngrams(normalized string) []string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return nil
	}
	grams := make([]string, 0, 2*len(tokens)-1)
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return math.Min(1, floats.Dot(a, b)/(na*nb))
}
