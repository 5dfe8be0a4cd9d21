package handlers

import (
	"net/http"

	"faqbot/internal/contextutil"
	"faqbot/internal/service"
)

// IndexHandler handles HTTP requests for rebuilding the serving index.
type IndexHandler struct {
	rebuilder service.IndexRebuilder
	index     IndexState
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(rebuilder service.IndexRebuilder, index IndexState) *IndexHandler {
	return &IndexHandler{
		rebuilder: rebuilder,
		index:     index,
	}
}

// IndexResponse represents the response from the rebuild endpoint.
type IndexResponse struct {
	Status         string `json:"status"`
	Generation     uint64 `json:"generation"`
	CorpusSize     int    `json:"corpus_size"`
	VocabularySize int    `json:"vocabulary_size"`
}

// ServeHTTP rebuilds the index from the store before responding, so writes
// made by another process are visible to the next query.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger.InfoContext(ctx, "index rebuild triggered via API")

	if err := h.rebuilder.Rebuild(ctx); err != nil {
		logger.ErrorContext(ctx, "index rebuild failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to rebuild index")
		return
	}

	resp := IndexResponse{Status: "ok"}
	if idx := h.index.Current(); idx != nil {
		resp.Generation = idx.Generation()
		resp.CorpusSize = idx.Len()
		resp.VocabularySize = idx.VocabularySize()
	}
	writeJSON(w, http.StatusOK, resp)
}
