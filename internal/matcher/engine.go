package matcher

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"faqbot/internal/contextutil"
	"faqbot/internal/storage"
)

// EntrySource resolves entry ids to stored records.
type EntrySource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]storage.FAQRecord, error)
}

type cacheKey struct {
	generation uint64
	text       string
}

// Engine answers user messages against the index held by a Manager.
type Engine struct {
	manager  *Manager
	entries  EntrySource
	distance Distance
	topK     int
	cache    *lru.Cache[cacheKey, Response]
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTopK sets how many candidates are ranked per query.
func WithTopK(k int) EngineOption {
	return func(e *Engine) {
		if k > 0 {
			e.topK = k
		}
	}
}

// WithDistance sets the edit-distance strategy.
func WithDistance(d Distance) EngineOption {
	return func(e *Engine) {
		if d != nil {
			e.distance = d
		}
	}
}

// WithCacheSize enables an LRU response cache of the given size.
func WithCacheSize(size int) EngineOption {
	return func(e *Engine) {
		if size > 0 {
			e.cache, _ = lru.New[cacheKey, Response](size)
		}
	}
}

// NewEngine creates an Engine. Defaults: DefaultTopK candidates, Levenshtein
// distance, no response cache.
func NewEngine(manager *Manager, entries EntrySource, opts ...EngineOption) *Engine {
	e := &Engine{
		manager:  manager,
		entries:  entries,
		distance: Levenshtein(),
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache != nil {
		cache := e.cache
		manager.OnRebuild(func(context.Context, *Index) {
			cache.Purge()
		})
	}
	return e
}

// TopK returns the configured candidate count.
func (e *Engine) TopK() int {
	return e.topK
}

// Answer produces the graded response for a message. It only fails when the
// corpus store fails.
func (e *Engine) Answer(ctx context.Context, message string) (Response, error) {
	logger := contextutil.LoggerFromContext(ctx)
	normalized := Normalize(message)

	if resp, ok := DetectSmallTalk(normalized); ok {
		logger.DebugContext(ctx, "small talk detected", "intent", resp.Intent)
		return resp, nil
	}

	idx, err := e.manager.Ensure(ctx)
	if err != nil {
		return Response{}, err
	}

	key := cacheKey{generation: idx.Generation(), text: normalized}
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			resp := cached.clone()
			if resp.Debug != nil {
				resp.Debug.Cached = true
			}
			return resp, nil
		}
	}

	candidates := Blend(normalized, idx.Query(normalized, e.topK), e.distance)

	entries, err := e.lookup(ctx, candidates)
	if err != nil {
		return Response{}, err
	}

	resp := Classify(candidates, entries)
	resp.Debug = &DebugInfo{
		Generation:      idx.Generation(),
		CorpusSize:      idx.Len(),
		DistanceBackend: e.distance.Name(),
		Candidates:      candidates,
	}

	logger.InfoContext(ctx, "query answered",
		"intent", resp.Intent,
		"confidence", resp.Confidence,
		"candidates", len(candidates),
		"generation", idx.Generation(),
	)

	if e.cache != nil {
		e.cache.Add(key, resp.clone())
	}
	return resp, nil
}

func (e *Engine) lookup(ctx context.Context, candidates []Candidate) (map[int64]Entry, error) {
	entries := make(map[int64]Entry, len(candidates))
	if len(candidates) == 0 {
		return entries, nil
	}

	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	records, err := e.entries.GetByIDs(ctx, ids)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load candidate entries", "error", err)
		return nil, fmt.Errorf("failed to load candidate entries: %w", err)
	}
	for _, rec := range records {
		entries[rec.ID] = Entry{ID: rec.ID, Question: rec.Question, Answer: rec.Answer}
	}
	return entries, nil
}
