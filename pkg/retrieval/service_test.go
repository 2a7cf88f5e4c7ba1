package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	err error
}

func (f fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0, 0}, nil
}

func (f fakeEmbedder) Dimensions() int { return 3 }

type recordingSearcher struct {
	gotLimit    int
	gotMinScore float64
	results     []*ScoredChunk
	err         error
}

func (r *recordingSearcher) SearchSimilar(ctx context.Context, vector []float32, limit int, minScore float64, filters Filters) ([]*ScoredChunk, error) {
	r.gotLimit = limit
	r.gotMinScore = minScore
	return r.results, r.err
}

func scoredChunk(content string, sim float64) *ScoredChunk {
	return &ScoredChunk{
		Chunk: &entity.DocumentChunk{
			Id:            uuid.New(),
			DocumentId:    uuid.New(),
			DocumentTitle: "Academic Regulations",
			Content:       content,
			Locator:       "section 2",
		},
		Similarity: sim,
	}
}

func TestSearchParameterClamping(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		minScore     float64
		wantLimit    int
		wantMinScore float64
	}{
		{name: "defaults", limit: 0, minScore: 0, wantLimit: DefaultLimit, wantMinScore: DefaultMinScore},
		{name: "negative limit", limit: -3, minScore: 0.5, wantLimit: DefaultLimit, wantMinScore: 0.5},
		{name: "limit above max", limit: 100, minScore: 0.5, wantLimit: MaxLimit, wantMinScore: 0.5},
		{name: "min score above one", limit: 5, minScore: 1.5, wantLimit: 5, wantMinScore: DefaultMinScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &recordingSearcher{}
			svc := NewService(fakeEmbedder{}, searcher, logger.NewNopLogger())

			_, err := svc.Search(context.Background(), "query", Filters{}, tt.limit, tt.minScore)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, searcher.gotLimit)
			assert.Equal(t, tt.wantMinScore, searcher.gotMinScore)
		})
	}
}

func TestSearchHydratesPassages(t *testing.T) {
	searcher := &recordingSearcher{results: []*ScoredChunk{
		scoredChunk("Students must complete 200 credits.", 0.92),
		scoredChunk(strings.Repeat("x", 600), 0.85),
	}}
	svc := NewService(fakeEmbedder{}, searcher, logger.NewNopLogger())

	passages, err := svc.Search(context.Background(), "graduation requirements", Filters{}, 5, 0.7)
	require.NoError(t, err)
	require.Len(t, passages, 2)

	assert.Equal(t, "Academic Regulations", passages[0].DocumentTitle)
	assert.Equal(t, "Students must complete 200 credits.", passages[0].Excerpt)
	assert.Equal(t, 0.92, passages[0].Similarity)

	// Long content is bounded for prompt assembly
	assert.True(t, strings.HasSuffix(passages[1].Excerpt, "..."))
	assert.LessOrEqual(t, len([]rune(passages[1].Excerpt)), 503)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	svc := NewService(fakeEmbedder{}, &recordingSearcher{}, logger.NewNopLogger())

	passages, err := svc.Search(context.Background(), "nothing matches this", Filters{}, 5, 0.7)
	require.NoError(t, err)
	assert.Empty(t, passages)
}

func TestSearchFailuresReturnErrRetrievalFailed(t *testing.T) {
	t.Run("embedder down", func(t *testing.T) {
		svc := NewService(fakeEmbedder{err: errors.New("connection refused")}, &recordingSearcher{}, logger.NewNopLogger())
		_, err := svc.Search(context.Background(), "query", Filters{}, 5, 0.7)
		assert.ErrorIs(t, err, ErrRetrievalFailed)
	})

	t.Run("searcher down", func(t *testing.T) {
		svc := NewService(fakeEmbedder{}, &recordingSearcher{err: errors.New("connection refused")}, logger.NewNopLogger())
		_, err := svc.Search(context.Background(), "query", Filters{}, 5, 0.7)
		assert.ErrorIs(t, err, ErrRetrievalFailed)
	})
}
