package memory

import (
	"context"
	"testing"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedChunk(title string, embedding []float32) *entity.DocumentChunk {
	return &entity.DocumentChunk{
		Id:            uuid.New(),
		DocumentId:    uuid.New(),
		DocumentTitle: title,
		Content:       title + " content",
		Embedding:     embedding,
	}
}

func TestVectorIndexRankingAndThreshold(t *testing.T) {
	ix := NewVectorIndex()
	ix.Add(
		indexedChunk("far", []float32{0, 1, 0}),
		indexedChunk("close", []float32{0.95, 0.05, 0}),
		indexedChunk("exact", []float32{1, 0, 0}),
		indexedChunk("mid", []float32{0.7, 0.7, 0}),
	)

	results, err := ix.SearchSimilar(context.Background(), []float32{1, 0, 0}, 3, 0.9, retrieval.Filters{})
	require.NoError(t, err)

	// limit 3, min similarity 0.9: only "exact" and "close" qualify
	require.Len(t, results, 2)
	assert.Equal(t, "exact", results[0].Chunk.DocumentTitle)
	assert.Equal(t, "close", results[1].Chunk.DocumentTitle)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestVectorIndexStableTieBreak(t *testing.T) {
	ix := NewVectorIndex()
	first := indexedChunk("first inserted", []float32{1, 0, 0})
	second := indexedChunk("second inserted", []float32{1, 0, 0})
	ix.Add(first, second)

	results, err := ix.SearchSimilar(context.Background(), []float32{1, 0, 0}, 5, 0.5, retrieval.Filters{})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, first.Id, results[0].Chunk.Id)
	assert.Equal(t, second.Id, results[1].Chunk.Id)
}

func TestVectorIndexFilters(t *testing.T) {
	ix := NewVectorIndex()

	engineering := indexedChunk("engineering rules", []float32{1, 0, 0})
	engineering.DocumentType = "regulation"
	engineering.Faculty = "engineering"

	law := indexedChunk("law rules", []float32{1, 0, 0})
	law.DocumentType = "regulation"
	law.Faculty = "law"

	ix.Add(engineering, law)

	results, err := ix.SearchSimilar(context.Background(), []float32{1, 0, 0}, 5, 0.5, retrieval.Filters{Faculty: "law"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "law rules", results[0].Chunk.DocumentTitle)
}

func TestVectorIndexDeleteByDocumentId(t *testing.T) {
	ix := NewVectorIndex()
	keep := indexedChunk("keep", []float32{1, 0, 0})
	drop := indexedChunk("drop", []float32{1, 0, 0})
	ix.Add(keep, drop)

	ix.DeleteByDocumentId(drop.DocumentId)

	assert.Equal(t, 1, ix.Len())
	results, err := ix.SearchSimilar(context.Background(), []float32{1, 0, 0}, 5, 0.5, retrieval.Filters{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, keep.Id, results[0].Chunk.Id)
}

func TestVectorIndexCancelledContext(t *testing.T) {
	ix := NewVectorIndex()
	ix.Add(indexedChunk("any", []float32{1, 0, 0}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ix.SearchSimilar(ctx, []float32{1, 0, 0}, 5, 0.5, retrieval.Filters{})
	assert.ErrorIs(t, err, context.Canceled)
}
