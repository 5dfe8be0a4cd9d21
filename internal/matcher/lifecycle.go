package matcher

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"faqbot/internal/contextutil"
	"faqbot/internal/storage"
)

// SnapshotSource lists the whole corpus in a stable order.
type SnapshotSource interface {
	ListAll(ctx context.Context) ([]storage.FAQRecord, error)
}

// RebuildHook runs after a new index has been installed.
type RebuildHook func(ctx context.Context, idx *Index)

// Manager owns the current index. Rebuilds are serialized and install the
// new index with a single atomic store, so readers see either the previous
// or the new index and never a partial one.
type Manager struct {
	source SnapshotSource

	mu         sync.Mutex // serializes rebuilds and guards generation/hooks
	generation uint64
	hooks      []RebuildHook

	current atomic.Pointer[Index]
	lazy    singleflight.Group
}

// NewManager creates a Manager with no index built yet.
func NewManager(source SnapshotSource) *Manager {
	return &Manager{source: source}
}

// OnRebuild registers a hook invoked after every successful rebuild.
func (m *Manager) OnRebuild(hook RebuildHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Current returns the installed index, or nil if none was ever built.
func (m *Manager) Current() *Index {
	return m.current.Load()
}

// Rebuild reads a fresh snapshot, fits a new index and installs it.
// On error the previous index stays in place.
func (m *Manager) Rebuild(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	m.mu.Lock()
	records, err := m.source.ListAll(ctx)
	if err != nil {
		m.mu.Unlock()
		logger.ErrorContext(ctx, "failed to load corpus snapshot", "error", err)
		return fmt.Errorf("failed to load corpus snapshot: %w", err)
	}

	docs := make([]Document, len(records))
	for i, rec := range records {
		docs[i] = Document{ID: rec.ID, Question: rec.Question}
	}

	start := time.Now()
	idx := Build(docs)
	m.generation++
	idx.generation = m.generation
	m.current.Store(idx)
	hooks := append([]RebuildHook(nil), m.hooks...)
	m.mu.Unlock()

	logger.InfoContext(ctx, "index rebuilt",
		"generation", idx.generation,
		"documents", idx.Len(),
		"vocabulary", idx.VocabularySize(),
		"duration", time.Since(start),
	)

	for _, hook := range hooks {
		hook(ctx, idx)
	}
	return nil
}

// Ensure returns the current index, building it first if this process has
// never built one. Concurrent first callers share a single build.
func (m *Manager) Ensure(ctx context.Context) (*Index, error) {
	if idx := m.current.Load(); idx != nil {
		return idx, nil
	}

	_, err, _ := m.lazy.Do("initial", func() (any, error) {
		if m.current.Load() != nil {
			return nil, nil
		}
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "no index yet, building on first query")
		return nil, m.Rebuild(ctx)
	})
	if err != nil {
		return nil, err
	}
	return m.current.Load(), nil
}
