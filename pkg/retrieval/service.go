package retrieval

import (
	"context"
	"errors"
	"fmt"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

const (
	DefaultLimit      = 5
	MaxLimit          = 50
	DefaultMinScore   = 0.7
	defaultExcerptLen = 500
)

// ErrRetrievalFailed distinguishes "retrieval broke" from "no matches".
// An empty passage list with a nil error is a valid zero-result outcome.
var ErrRetrievalFailed = errors.New("document retrieval failed")

// Passage is one relevant excerpt from the document index, ready for
// prompt assembly and source attribution.
type Passage struct {
	DocumentId    uuid.UUID
	DocumentTitle string
	Excerpt       string
	Locator       string
	Similarity    float64
}

// Service turns a free-text query into ranked relevant passages.
type Service struct {
	embedder   embedding.Provider
	searcher   Searcher
	excerptLen int
	logger     logger.ILogger
}

func NewService(embedder embedding.Provider, searcher Searcher, log logger.ILogger) *Service {
	return &Service{
		embedder:   embedder,
		searcher:   searcher,
		excerptLen: defaultExcerptLen,
		logger:     log,
	}
}

// Search embeds the query, runs the similarity search and hydrates the
// matches. limit is clamped to [1, MaxLimit] (default 5); minScore defaults
// to 0.7 when not in (0, 1].
func (s *Service) Search(ctx context.Context, query string, filters Filters, limit int, minScore float64) ([]Passage, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if minScore <= 0 || minScore > 1 {
		minScore = DefaultMinScore
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", ErrRetrievalFailed, err)
	}

	matches, err := s.searcher.SearchSimilar(ctx, vector, limit, minScore, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: similarity search: %v", ErrRetrievalFailed, err)
	}

	passages := make([]Passage, 0, len(matches))
	for _, m := range matches {
		if m.Chunk == nil || m.Similarity < minScore {
			continue
		}
		passages = append(passages, Passage{
			DocumentId:    m.Chunk.DocumentId,
			DocumentTitle: m.Chunk.DocumentTitle,
			Excerpt:       truncate(m.Chunk.Content, s.excerptLen),
			Locator:       m.Chunk.Locator,
			Similarity:    m.Similarity,
		})
		if len(passages) == limit {
			break
		}
	}

	s.logger.Info("retrieval", "Similarity search completed", map[string]interface{}{
		"matches":   len(passages),
		"limit":     limit,
		"min_score": minScore,
	})

	return passages, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
