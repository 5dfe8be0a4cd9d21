package vectorstore

import (
	"context"
	"sync"
	"time"

	"faqbot/internal/contextutil"
	"faqbot/internal/matcher"
)

// DefaultExportTimeout bounds a single export.
const DefaultExportTimeout = 10 * time.Second

// Exporter pushes each rebuilt index to an IndexStore.
type Exporter struct {
	store      IndexStore
	collection string
	timeout    time.Duration

	mu       sync.Mutex
	exported uint64 // last exported generation

	pending sync.WaitGroup
}

// NewExporter creates an Exporter writing to collection.
func NewExporter(store IndexStore, collection string) *Exporter {
	return &Exporter{
		store:      store,
		collection: collection,
		timeout:    DefaultExportTimeout,
	}
}

// Export writes the index's document vectors. Indexes older than the last
// exported one are skipped, so a slow export never overwrites a newer one.
func (e *Exporter) Export(ctx context.Context, idx *matcher.Index) error {
	logger := contextutil.LoggerFromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if idx.Generation() != 0 && idx.Generation() <= e.exported {
		logger.DebugContext(ctx, "skipping stale index export",
			"generation", idx.Generation(),
			"exported", e.exported,
		)
		return nil
	}

	points := Points(idx)
	if err := e.store.ReplaceSparse(ctx, e.collection, points); err != nil {
		return err
	}
	e.exported = idx.Generation()

	logger.InfoContext(ctx, "index exported",
		"collection", e.collection,
		"generation", idx.Generation(),
		"points", len(points),
	)
	return nil
}

// Hook adapts the exporter to a rebuild hook. The export runs in the
// background so a slow or unreachable store never delays the rebuild's caller.
// Failures are logged.
func (e *Exporter) Hook() matcher.RebuildHook {
	return func(ctx context.Context, idx *matcher.Index) {
		exportCtx := context.WithoutCancel(ctx)

		e.pending.Add(1)
		go func() {
			defer e.pending.Done()

			ctx, cancel := context.WithTimeout(exportCtx, e.timeout)
			defer cancel()

			if err := e.Export(ctx, idx); err != nil {
				contextutil.LoggerFromContext(ctx).WarnContext(ctx, "index export failed",
					"collection", e.collection,
					"generation", idx.Generation(),
					"error", err,
				)
			}
		}()
	}
}

// Close waits for background exports to finish.
func (e *Exporter) Close() error {
	e.pending.Wait()
	return nil
}

// ExpectedPoints returns how many points an export of idx writes.
func ExpectedPoints(idx *matcher.Index) int {
	n := 0
	for _, v := range idx.SparseVectors() {
		if len(v.Indices) > 0 {
			n++
		}
	}
	return n
}

// Points converts an index into sparse points. Documents whose question
// normalizes to nothing have no weights and are left out.
func Points(idx *matcher.Index) []SparsePoint {
	vectors := idx.SparseVectors()
	points := make([]SparsePoint, 0, len(vectors))
	for _, v := range vectors {
		if len(v.Indices) == 0 {
			continue
		}
		values := make([]float32, len(v.Values))
		for i, w := range v.Values {
			values[i] = float32(w)
		}
		points = append(points, SparsePoint{
			ID:      uint64(v.ID),
			Indices: v.Indices,
			Values:  values,
			Meta: map[string]any{
				"faq_id":     v.ID,
				"question":   v.Question,
				"generation": int64(idx.Generation()),
			},
		})
	}
	return points
}
