package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
)

// VectorIndex is a brute-force in-memory similarity index. It backs the
// retrieval service in standalone mode and in tests, where a Postgres
// pgvector instance is not available. Chunks are kept in insertion order
// so equal similarity scores rank deterministically.
type VectorIndex struct {
	mu     sync.RWMutex
	chunks []*entity.DocumentChunk
}

var _ retrieval.Searcher = &VectorIndex{}

func NewVectorIndex() *VectorIndex {
	return &VectorIndex{}
}

func (ix *VectorIndex) Add(chunks ...*entity.DocumentChunk) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.chunks = append(ix.chunks, chunks...)
}

func (ix *VectorIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.chunks)
}

func (ix *VectorIndex) DeleteByDocumentId(documentId uuid.UUID) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	kept := ix.chunks[:0]
	for _, c := range ix.chunks {
		if c.DocumentId != documentId {
			kept = append(kept, c)
		}
	}
	ix.chunks = kept
}

func (ix *VectorIndex) SearchSimilar(ctx context.Context, vector []float32, limit int, minScore float64, filters retrieval.Filters) ([]*retrieval.ScoredChunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var scored []*retrieval.ScoredChunk
	for _, c := range ix.chunks {
		if !matchesFilters(c, filters) {
			continue
		}
		sim := cosineSimilarity(vector, c.Embedding)
		if sim < minScore {
			continue
		}
		scored = append(scored, &retrieval.ScoredChunk{Chunk: c, Similarity: sim})
	}

	// Stable sort keeps insertion order for equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func matchesFilters(c *entity.DocumentChunk, f retrieval.Filters) bool {
	if f.DocumentType != "" && c.DocumentType != f.DocumentType {
		return false
	}
	if f.Faculty != "" && c.Faculty != f.Faculty {
		return false
	}
	if f.AcademicYear != "" && c.AcademicYear != f.AcademicYear {
		return false
	}
	return true
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
