package workflow

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
)

// ResponseFormattingNode is always the final node. It turns the
// accumulated context into the reply the caller sees, attaches source
// attributions and computes the response confidence. On generator
// failure it emits the fixed fallback reply so the run still completes
// with a well-formed response.
type ResponseFormattingNode struct {
	provider llm.Provider
	logger   logger.ILogger
}

var _ Node = &ResponseFormattingNode{}

func NewResponseFormattingNode(provider llm.Provider, log logger.ILogger) *ResponseFormattingNode {
	return &ResponseFormattingNode{provider: provider, logger: log}
}

func (n *ResponseFormattingNode) Name() string { return "response_formatting" }

func (n *ResponseFormattingNode) Run(ctx context.Context, st *State) error {
	st.Sources = dedupeByDocument(st.Passages)

	prompt := n.buildPrompt(st)

	text, err := n.provider.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		st.ResponseText = FallbackResponse
		st.ResponseConfidence = 0.1
		st.SuggestedActions = suggestedActionsFor(st.QueryType, true)
		if err == nil {
			err = fmt.Errorf("empty response from generator")
		}
		return fmt.Errorf("response formatting: %w", err)
	}

	st.ResponseText = text
	st.ResponseConfidence = responseConfidence(st)
	st.SuggestedActions = suggestedActionsFor(st.QueryType, st.Degraded())

	n.logger.Info("workflow", "Response formatted", map[string]interface{}{
		"query_type": st.QueryType,
		"confidence": st.ResponseConfidence,
		"sources":    len(st.Sources),
		"session_id": st.SessionId,
	})
	return nil
}

func (n *ResponseFormattingNode) buildPrompt(st *State) string {
	var prompt strings.Builder

	prompt.WriteString("You are the virtual assistant of the university, replying to a student.\n\n")

	switch st.QueryType {
	case QueryTypeDocumentQA, QueryTypeProcedure:
		if st.ContextSummary != "" {
			prompt.WriteString("<reference_material>\n")
			prompt.WriteString("Answer ONLY from this material. Do not use outside knowledge.\n\n")
			prompt.WriteString(st.ContextSummary)
			prompt.WriteString("\n</reference_material>\n\n")
		} else {
			prompt.WriteString("No reference material matched the question. Say so, and suggest rephrasing with more specific keywords.\n")
			prompt.WriteString("Suggested wording: ")
			prompt.WriteString(noContextResponse)
			prompt.WriteString("\n\n")
		}
	case QueryTypeComplaint:
		prompt.WriteString("<intake_result>\n")
		prompt.WriteString(st.ContextSummary)
		prompt.WriteString("\n</intake_result>\n")
		prompt.WriteString("Relay the intake result to the student in a friendly tone. Keep any tracking id verbatim.\n\n")
	default:
		if st.ContextSummary != "" {
			prompt.WriteString("<draft_answer>\n")
			prompt.WriteString(st.ContextSummary)
			prompt.WriteString("\n</draft_answer>\n")
			prompt.WriteString("Polish the draft into the final reply. Keep it brief.\n\n")
		} else {
			prompt.WriteString("Greet the student and explain you can help with academic procedures, document questions and problem reports.\n\n")
		}
	}

	prompt.WriteString(fmt.Sprintf("Student message: %s\n", st.Message))
	prompt.WriteString("Reply in the language of the student's message.")

	return prompt.String()
}

// responseConfidence combines classification confidence with retrieval
// quality: 0.7*intent + 0.3*bestSimilarity when passages were retrieved,
// 0.8*intent otherwise. Any recorded error costs a flat 0.2, floored at
// 0.1 so a degraded-but-answered run stays distinguishable from zero.
func responseConfidence(st *State) float64 {
	var conf float64
	if len(st.Passages) > 0 {
		conf = 0.7*st.IntentConfidence + 0.3*st.BestSimilarity()
	} else {
		conf = 0.8 * st.IntentConfidence
	}

	if st.Degraded() {
		conf -= 0.2
		if conf < 0.1 {
			conf = 0.1
		}
	}
	return clamp01(conf)
}

// dedupeByDocument keeps the first passage per source document,
// preserving rank order.
func dedupeByDocument(passages []retrieval.Passage) []retrieval.Passage {
	if len(passages) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(passages))
	var out []retrieval.Passage
	for _, p := range passages {
		if seen[p.DocumentId] {
			continue
		}
		seen[p.DocumentId] = true
		out = append(out, p)
	}
	return out
}
