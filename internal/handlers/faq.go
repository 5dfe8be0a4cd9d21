package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"faqbot/internal/contextutil"
	"faqbot/internal/service"
	"faqbot/internal/storage"
)

// FAQHandler serves CRUD endpoints for FAQ entries.
type FAQHandler struct {
	faqService service.FAQService
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(faqService service.FAQService) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
	}
}

// FAQResponse is the JSON form of an FAQ entry.
type FAQResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Tags      *string   `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFAQRequest is the body of POST /api/faq.
type CreateFAQRequest struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Tags     *string `json:"tags"`
}

// UpdateFAQRequest is the body of PUT /api/faq/{id}. Omitted fields are kept.
type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Tags     *string `json:"tags"`
}

// Routes mounts the FAQ endpoints on r.
func (h *FAQHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns every entry in ascending id order.
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	faqs, err := h.faqService.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list FAQs")
		return
	}

	out := make([]FAQResponse, len(faqs))
	for i := range faqs {
		out[i] = toFAQResponse(&faqs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns a single entry.
func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	faq, err := h.faqService.Get(ctx, id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get FAQ")
		return
	}
	writeJSON(w, http.StatusOK, toFAQResponse(faq))
}

// Create adds an entry and rebuilds the index.
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	faq, err := h.faqService.Create(ctx, service.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Tags:     req.Tags,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create FAQ")
		return
	}
	writeJSON(w, http.StatusCreated, toFAQResponse(faq))
}

// Update applies a partial update and rebuilds the index.
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	faq, err := h.faqService.Update(ctx, id, service.FAQUpdate{
		Question: req.Question,
		Answer:   req.Answer,
		Tags:     req.Tags,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update FAQ")
		return
	}
	writeJSON(w, http.StatusOK, toFAQResponse(faq))
}

// Delete removes an entry and rebuilds the index.
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.faqService.Delete(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete FAQ")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid FAQ id")
		return 0, false
	}
	return id, true
}

func toFAQResponse(faq *storage.FAQRecord) FAQResponse {
	return FAQResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		Tags:      faq.Tags,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}
