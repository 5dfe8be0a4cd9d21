package storage

import "time"

// FAQRecord represents a question/answer pair in the database.
type FAQRecord struct {
	ID        int64
	Question  string
	Answer    string
	Tags      *string // nil when the entry has no tags
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FAQPatch holds a partial update. Nil fields are left untouched.
type FAQPatch struct {
	Question *string
	Answer   *string
	Tags     *string
}

// Empty reports whether the patch changes nothing.
func (p FAQPatch) Empty() bool {
	return p.Question == nil && p.Answer == nil && p.Tags == nil
}
