package handlers

import (
	"encoding/json"
	"net/http"

	"faqbot/internal/contextutil"
	"faqbot/internal/matcher"
	"faqbot/internal/service"
)

// ChatHandler handles HTTP requests for chat queries.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Answer      string             `json:"answer"`
	Intent      matcher.Intent     `json:"intent"`
	Confidence  float64            `json:"confidence"`
	Suggestions []string           `json:"suggestions"`
	Debug       *matcher.DebugInfo `json:"debug,omitempty"`
}

// ServeHTTP answers a chat message. ?debug=true adds the scoring details.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Convert HTTP request to service request
	svcReq := service.ChatRequest{
		Message: req.Message,
		Debug:   r.URL.Query().Get("debug") == "true",
	}

	svcResp, err := h.chatService.ProcessChat(ctx, svcReq)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process chat request")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Answer:      svcResp.Answer,
		Intent:      svcResp.Intent,
		Confidence:  svcResp.Confidence,
		Suggestions: svcResp.Suggestions,
		Debug:       svcResp.Debug,
	})
}
