package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_answerer.go -package=mocks faqbot/internal/service Answerer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService faqbot/internal/service ChatService

import (
	"context"
	"fmt"
	"unicode/utf8"

	"faqbot/internal/contextutil"
	"faqbot/internal/matcher"
)

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 2000

// Answerer resolves a message against the FAQ corpus.
// This interface is defined from the service layer's perspective (consumer-first).
type Answerer interface {
	Answer(ctx context.Context, message string) (matcher.Response, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string
	// Debug keeps the scoring details in the response.
	Debug bool
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Answer      string             `json:"answer"`
	Intent      matcher.Intent     `json:"intent"`
	Confidence  float64            `json:"confidence"`
	Suggestions []string           `json:"suggestions"`
	Debug       *matcher.DebugInfo `json:"debug,omitempty"`
}

// ChatService provides chat functionality.
type ChatService interface {
	// ProcessChat answers a user message.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	answerer Answerer
}

// NewChatService creates a new ChatService.
func NewChatService(answerer Answerer) ChatService {
	return &chatService{
		answerer: answerer,
	}
}

// ProcessChat answers a user message. Empty messages are accepted and
// resolve through the matcher like any other text.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if n := utf8.RuneCountInString(req.Message); n > MaxMessageLength {
		logger.WarnContext(ctx, "chat message too long", "length", n)
		return ChatResponse{}, &ValidationError{
			Field:   "message",
			Message: fmt.Sprintf("must be at most %d characters", MaxMessageLength),
		}
	}

	resp, err := s.answerer.Answer(ctx, req.Message)
	if err != nil {
		logger.ErrorContext(ctx, "failed to answer message", "error", err)
		return ChatResponse{}, WrapError(err, "failed to answer message")
	}

	out := ChatResponse{
		Answer:      resp.Answer,
		Intent:      resp.Intent,
		Confidence:  resp.Confidence,
		Suggestions: resp.Suggestions,
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if req.Debug {
		out.Debug = resp.Debug
	}

	logger.InfoContext(ctx, "chat request processed successfully",
		"message_length", len(req.Message),
		"intent", resp.Intent,
		"confidence", resp.Confidence,
	)
	return out, nil
}
