package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_store.go -package=mocks faqbot/internal/vectorstore IndexStore

import "context"

// SparsePoint is one FAQ entry's TF-IDF vector with metadata.
type SparsePoint struct {
	ID      uint64
	Indices []uint32
	Values  []float32
	Meta    map[string]any
}

// IndexStore mirrors the lexical index into an external vector database.
type IndexStore interface {
	// ReplaceSparse drops the collection and recreates it holding exactly points.
	ReplaceSparse(ctx context.Context, collection string, points []SparsePoint) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// GetCollectionInfo returns the point count and status of a collection.
	GetCollectionInfo(ctx context.Context, collection string) (*CollectionInfo, error)
}

// CollectionInfo contains information about an exported collection.
type CollectionInfo struct {
	PointsCount int
	Status      string
}
