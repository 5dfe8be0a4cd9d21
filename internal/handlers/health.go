package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"faqbot/internal/contextutil"
	"faqbot/internal/matcher"
	"faqbot/internal/vectorstore"
)

// Pinger checks database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// IndexState exposes the currently installed index.
type IndexState interface {
	Current() *matcher.Index
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 Pinger
	index              IndexState
	vectorStore        vectorstore.IndexStore
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. vectorStore may be nil when
// index export is disabled.
func NewHealthHandler(db Pinger, index IndexState, vectorStore vectorstore.IndexStore, collectionName string) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		index:              index,
		vectorStore:        vectorStore,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Index describes the index currently serving queries.
	Index IndexHealth `json:"index"`

	// VectorStore describes the exported collection (only present when export is enabled)
	VectorStore *VectorStoreHealth `json:"vector_store,omitempty"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// IndexHealth describes the installed index.
type IndexHealth struct {
	Built          bool   `json:"built"`
	Generation     uint64 `json:"generation"`
	CorpusSize     int    `json:"corpus_size"`
	VocabularySize int    `json:"vocabulary_size"`
}

// VectorStoreHealth compares the exported collection with the serving index.
type VectorStoreHealth struct {
	Collection     string `json:"collection"`
	Status         string `json:"status,omitempty"`
	PointsCount    int    `json:"points_count"`
	ExpectedPoints int    `json:"expected_points"`
}

// ServeHTTP reports database reachability, index state and, when enabled,
// whether the exported collection matches the index. Returns 503 only when the database is down.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string
	status := "healthy"
	httpStatus := http.StatusOK

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	idx := h.index.Current()
	var index IndexHealth
	if idx != nil {
		index = IndexHealth{
			Built:          true,
			Generation:     idx.Generation(),
			CorpusSize:     idx.Len(),
			VocabularySize: idx.VocabularySize(),
		}
		checks["index"] = "ok"
	} else {
		// built lazily on the first query
		checks["index"] = "not_built"
	}

	var vs *VectorStoreHealth
	if h.vectorStore != nil {
		var check string
		vs, check = h.checkVectorStore(checkCtx, logger, idx)
		checks["vector_store"] = check
		if check != "ok" {
			issues = append(issues, "vector_store_"+check)
			if status == "healthy" {
				status = "degraded"
			}
		}
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Checks:      checks,
		Index:       index,
		VectorStore: vs,
		Issues:      issues,
	})
}

// checkVectorStore reports whether the export collection is reachable and
// holds one point per exportable entry of the serving index. The check result
// is "ok", "error", "missing" or "out_of_sync".
func (h *HealthHandler) checkVectorStore(ctx context.Context, logger *slog.Logger, idx *matcher.Index) (*VectorStoreHealth, string) {
	vs := &VectorStoreHealth{Collection: h.collectionName}

	exists, err := h.vectorStore.CollectionExists(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		return vs, "error"
	}
	if !exists {
		logger.WarnContext(ctx, "vector store collection does not exist", "collection", h.collectionName)
		return vs, "missing"
	}

	info, err := h.vectorStore.GetCollectionInfo(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store collection info failed", "error", err)
		return vs, "error"
	}
	vs.Status = info.Status
	vs.PointsCount = info.PointsCount

	if idx == nil {
		return vs, "ok"
	}
	vs.ExpectedPoints = vectorstore.ExpectedPoints(idx)
	if vs.PointsCount != vs.ExpectedPoints {
		logger.WarnContext(ctx, "vector store out of sync with index",
			"collection", h.collectionName,
			"points", vs.PointsCount,
			"expected", vs.ExpectedPoints,
			"generation", idx.Generation(),
		)
		return vs, "out_of_sync"
	}
	return vs, "ok"
}
