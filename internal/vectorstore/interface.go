package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks pdfchat/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
// Entries are append-only: this system never updates or deletes points.
type VectorStore interface {
	// EnsureCollection creates the collection if missing and validates its
	// vector size if it already exists.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// Upsert appends points to the collection in one batch.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns up to k nearest points by vector similarity, best first.
	// An empty collection returns an empty slice, not an error.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)
}
