package memory

import (
	"context"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
)

// DocumentChunkRepository keeps the chunk store fully in memory on top of
// VectorIndex. Used when no Postgres connection is configured.
type DocumentChunkRepository struct {
	index *VectorIndex
}

var _ contract.DocumentChunkRepository = &DocumentChunkRepository{}

func NewDocumentChunkRepository(index *VectorIndex) *DocumentChunkRepository {
	if index == nil {
		index = NewVectorIndex()
	}
	return &DocumentChunkRepository{index: index}
}

func (r *DocumentChunkRepository) Create(ctx context.Context, chunk *entity.DocumentChunk) error {
	if chunk.Id == uuid.Nil {
		chunk.Id = uuid.New()
	}
	r.index.Add(chunk)
	return nil
}

func (r *DocumentChunkRepository) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	for _, c := range chunks {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *DocumentChunkRepository) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	r.index.DeleteByDocumentId(documentId)
	return nil
}

func (r *DocumentChunkRepository) FindByDocumentId(ctx context.Context, documentId uuid.UUID) ([]*entity.DocumentChunk, error) {
	r.index.mu.RLock()
	defer r.index.mu.RUnlock()
	var out []*entity.DocumentChunk
	for _, c := range r.index.chunks {
		if c.DocumentId == documentId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *DocumentChunkRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.index.Len()), nil
}

func (r *DocumentChunkRepository) SearchSimilar(ctx context.Context, vector []float32, limit int, minScore float64, filters retrieval.Filters) ([]*retrieval.ScoredChunk, error) {
	return r.index.SearchSimilar(ctx, vector, limit, minScore, filters)
}
