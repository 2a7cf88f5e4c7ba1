package retrieval

import (
	"context"

	"campus-assistant-be/internal/entity"
)

// Filters narrows a similarity search by chunk metadata.
// Empty fields match everything.
type Filters struct {
	DocumentType string
	Faculty      string
	AcademicYear string
}

// ScoredChunk pairs a hydrated chunk with its cosine similarity.
type ScoredChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

// Searcher is the similarity-search contract. Implementations must return
// results sorted by descending similarity; ties are broken by chunk
// insertion order (stable).
type Searcher interface {
	SearchSimilar(ctx context.Context, vector []float32, limit int, minScore float64, filters Filters) ([]*ScoredChunk, error)
}
