package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_faq_store.go -package=mocks faqbot/internal/storage FAQStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// FAQStore defines the interface for FAQ storage operations.
type FAQStore interface {
	// ListAll returns every entry ordered by ascending id.
	ListAll(ctx context.Context) ([]FAQRecord, error)
	// GetByID returns a single entry.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id int64) (*FAQRecord, error)
	// GetByIDs returns the entries that still exist among ids, in ascending id order.
	GetByIDs(ctx context.Context, ids []int64) ([]FAQRecord, error)
	// Create inserts a new entry and fills in its id and timestamps.
	Create(ctx context.Context, faq *FAQRecord) error
	// Update applies a partial update and returns the stored entry.
	// Returns nil and ErrNotFound if not found.
	Update(ctx context.Context, id int64, patch FAQPatch) (*FAQRecord, error)
	// Delete removes an entry. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id int64) error
}

// FAQRepo provides methods for FAQ operations.
// It implements the FAQStore interface.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo creates a new FAQRepo.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

const faqColumns = "id, question, answer, tags, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFAQ(row rowScanner) (FAQRecord, error) {
	var faq FAQRecord
	var tags sql.NullString
	if err := row.Scan(&faq.ID, &faq.Question, &faq.Answer, &tags, &faq.CreatedAt, &faq.UpdatedAt); err != nil {
		return FAQRecord{}, err
	}
	if tags.Valid {
		faq.Tags = &tags.String
	}
	return faq, nil
}

// ListAll returns every entry ordered by ascending id.
func (r *FAQRepo) ListAll(ctx context.Context) ([]FAQRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+faqColumns+" FROM faq ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query faq entries: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// GetByID returns a single entry.
func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*FAQRecord, error) {
	faq, err := scanFAQ(r.db.QueryRowContext(ctx, "SELECT "+faqColumns+" FROM faq WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query faq entry: %w", err)
	}
	return &faq, nil
}

// GetByIDs returns the entries that still exist among ids.
func (r *FAQRepo) GetByIDs(ctx context.Context, ids []int64) ([]FAQRecord, error) {
	if len(ids) == 0 {
		return []FAQRecord{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := "SELECT " + faqColumns + " FROM faq WHERE id IN (" + strings.Join(placeholders, ", ") + ") ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faq entries by id: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// Create inserts a new entry and fills in its id and timestamps.
func (r *FAQRepo) Create(ctx context.Context, faq *FAQRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO faq (question, answer, tags) VALUES (?, ?, ?)",
		faq.Question, faq.Answer, faq.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to insert faq entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}

	// Re-read to pick up the database timestamps
	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*faq = *stored
	return nil
}

// Update applies a partial update and returns the stored entry.
func (r *FAQRepo) Update(ctx context.Context, id int64, patch FAQPatch) (*FAQRecord, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE faq SET
			question = COALESCE(?, question),
			answer = COALESCE(?, answer),
			tags = COALESCE(?, tags),
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		patch.Question, patch.Answer, patch.Tags, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update faq entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes an entry.
func (r *FAQRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM faq WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete faq entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]FAQRecord, error) {
	faqs := []FAQRecord{}
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq entry: %w", err)
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return faqs, nil
}
