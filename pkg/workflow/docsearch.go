package workflow

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/retrieval"
)

const excerptLimit = 400

// DocumentSearchNode retrieves relevant passages for document and
// procedure questions and assembles the bounded context summary the
// formatter will ground its answer on. Retrieval failure leaves the
// passages empty and lets the run continue without context.
type DocumentSearchNode struct {
	retriever     *retrieval.Service
	limit         int
	minSimilarity float64
	logger        logger.ILogger
}

var _ Node = &DocumentSearchNode{}

func NewDocumentSearchNode(retriever *retrieval.Service, limit int, minSimilarity float64, log logger.ILogger) *DocumentSearchNode {
	if limit <= 0 {
		limit = retrieval.DefaultLimit
	}
	if limit > retrieval.MaxLimit {
		limit = retrieval.MaxLimit
	}
	if minSimilarity <= 0 || minSimilarity > 1 {
		minSimilarity = retrieval.DefaultMinScore
	}
	return &DocumentSearchNode{
		retriever:     retriever,
		limit:         limit,
		minSimilarity: minSimilarity,
		logger:        log,
	}
}

func (n *DocumentSearchNode) Name() string { return "document_search" }

func (n *DocumentSearchNode) Run(ctx context.Context, st *State) error {
	passages, err := n.retriever.Search(ctx, st.Message, filtersFromMetadata(st.Metadata), n.limit, n.minSimilarity)
	if err != nil {
		// Downstream formatting proceeds with no context
		return err
	}

	st.Passages = passages
	st.ContextSummary = buildContextSummary(passages)

	n.logger.Info("workflow", "Document search completed", map[string]interface{}{
		"passages":   len(passages),
		"session_id": st.SessionId,
	})
	return nil
}

func filtersFromMetadata(metadata map[string]string) retrieval.Filters {
	return retrieval.Filters{
		DocumentType: metadata["document_type"],
		Faculty:      metadata["faculty"],
		AcademicYear: metadata["academic_year"],
	}
}

// buildContextSummary concatenates passages in rank order, each bounded
// to excerptLimit runes to cap the final prompt size.
func buildContextSummary(passages []retrieval.Passage) string {
	if len(passages) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range passages {
		excerpt := p.Excerpt
		runes := []rune(excerpt)
		if len(runes) > excerptLimit {
			excerpt = string(runes[:excerptLimit]) + "..."
		}
		sb.WriteString(fmt.Sprintf("[%d] %s (%s)\n%s\n\n", i+1, p.DocumentTitle, p.Locator, excerpt))
	}
	return strings.TrimSpace(sb.String())
}
