package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	Create(ctx context.Context, chunk *entity.DocumentChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindByDocumentId(ctx context.Context, documentId uuid.UUID) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context) (int64, error)

	// SearchSimilar implements retrieval.Searcher over the chunk store.
	SearchSimilar(ctx context.Context, vector []float32, limit int, minScore float64, filters retrieval.Filters) ([]*retrieval.ScoredChunk, error)
}
