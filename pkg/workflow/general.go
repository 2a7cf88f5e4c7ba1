package workflow

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/llm"
)

// GeneralResponseNode drafts a conversational answer with no retrieval
// step. It handles general_info and unknown intents and acts as the
// fallback branch when an earlier branch produced no usable context.
type GeneralResponseNode struct {
	provider llm.Provider
	logger   logger.ILogger
}

var _ Node = &GeneralResponseNode{}

func NewGeneralResponseNode(provider llm.Provider, log logger.ILogger) *GeneralResponseNode {
	return &GeneralResponseNode{provider: provider, logger: log}
}

func (n *GeneralResponseNode) Name() string { return "general_response" }

func (n *GeneralResponseNode) Run(ctx context.Context, st *State) error {
	var prompt strings.Builder
	prompt.WriteString("You are the virtual assistant of the university. Answer the student briefly and warmly.\n")
	prompt.WriteString("You can help with academic procedures, searching official documents, and registering problem reports.\n\n")
	prompt.WriteString(fmt.Sprintf("Student message: %s", st.Message))

	history := append(append([]llm.Message{}, st.History...), llm.Message{Role: "user", Content: prompt.String()})

	draft, err := n.provider.Chat(ctx, history)
	if err != nil {
		// Formatting falls back to the fixed reply
		return fmt.Errorf("general response: %w", err)
	}

	st.ContextSummary = draft

	n.logger.Debug("workflow", "General response drafted", map[string]interface{}{
		"session_id": st.SessionId,
		"length":     len(draft),
	})
	return nil
}
