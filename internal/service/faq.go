package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_rebuilder.go -package=mocks faqbot/internal/service IndexRebuilder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_faq_service.go -package=mocks -mock_names=FAQService=MockFAQService faqbot/internal/service FAQService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"faqbot/internal/contextutil"
	"faqbot/internal/storage"
)

// IndexRebuilder re-derives the search index from the current corpus.
type IndexRebuilder interface {
	Rebuild(ctx context.Context) error
}

// FAQInput holds the fields of a new FAQ entry.
type FAQInput struct {
	Question string
	Answer   string
	Tags     *string
}

// FAQUpdate holds a partial update. Nil fields are left unchanged.
type FAQUpdate struct {
	Question *string
	Answer   *string
	Tags     *string
}

// FAQService manages the FAQ corpus. Every successful mutation rebuilds the
// index before returning, so a later query sees the change.
type FAQService interface {
	List(ctx context.Context) ([]storage.FAQRecord, error)
	Get(ctx context.Context, id int64) (*storage.FAQRecord, error)
	Create(ctx context.Context, in FAQInput) (*storage.FAQRecord, error)
	Update(ctx context.Context, id int64, in FAQUpdate) (*storage.FAQRecord, error)
	Delete(ctx context.Context, id int64) error
}

type faqService struct {
	store   storage.FAQStore
	rebuild IndexRebuilder
}

// NewFAQService creates a new FAQService.
func NewFAQService(store storage.FAQStore, rebuild IndexRebuilder) FAQService {
	return &faqService{
		store:   store,
		rebuild: rebuild,
	}
}

func (s *faqService) List(ctx context.Context) ([]storage.FAQRecord, error) {
	faqs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list FAQs")
	}
	return faqs, nil
}

func (s *faqService) Get(ctx context.Context, id int64) (*storage.FAQRecord, error) {
	faq, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, id)
	}
	return faq, nil
}

func (s *faqService) Create(ctx context.Context, in FAQInput) (*storage.FAQRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	if question == "" {
		return nil, &ValidationError{Field: "question", Message: "cannot be empty"}
	}
	if answer == "" {
		return nil, &ValidationError{Field: "answer", Message: "cannot be empty"}
	}

	faq := &storage.FAQRecord{Question: question, Answer: answer, Tags: in.Tags}
	if err := s.store.Create(ctx, faq); err != nil {
		logger.ErrorContext(ctx, "failed to create FAQ", "error", err)
		return nil, WrapError(err, "failed to create FAQ")
	}
	logger.InfoContext(ctx, "FAQ created", "faq_id", faq.ID)

	if err := s.rebuildIndex(ctx); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) Update(ctx context.Context, id int64, in FAQUpdate) (*storage.FAQRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	patch := storage.FAQPatch{Tags: in.Tags}
	if in.Question != nil {
		q := strings.TrimSpace(*in.Question)
		if q == "" {
			return nil, &ValidationError{Field: "question", Message: "cannot be empty"}
		}
		patch.Question = &q
	}
	if in.Answer != nil {
		a := strings.TrimSpace(*in.Answer)
		if a == "" {
			return nil, &ValidationError{Field: "answer", Message: "cannot be empty"}
		}
		patch.Answer = &a
	}

	if patch.Empty() {
		return s.Get(ctx, id)
	}

	faq, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.ErrorContext(ctx, "failed to update FAQ", "faq_id", id, "error", err)
		}
		return nil, mapStoreError(err, id)
	}
	logger.InfoContext(ctx, "FAQ updated", "faq_id", id)

	if err := s.rebuildIndex(ctx); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) Delete(ctx context.Context, id int64) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.ErrorContext(ctx, "failed to delete FAQ", "faq_id", id, "error", err)
		}
		return mapStoreError(err, id)
	}
	logger.InfoContext(ctx, "FAQ deleted", "faq_id", id)

	return s.rebuildIndex(ctx)
}

// rebuildIndex runs after a committed write. A failure leaves the write in
// place and the previous index serving.
func (s *faqService) rebuildIndex(ctx context.Context) error {
	if err := s.rebuild.Rebuild(ctx); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "index rebuild after mutation failed", "error", err)
		return fmt.Errorf("%w: %w", ErrIndexRebuild, err)
	}
	return nil
}

func mapStoreError(err error, id int64) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("faq %d: %w", id, ErrNotFound)
	}
	return WrapError(err, fmt.Sprintf("failed to access faq %d", id))
}
