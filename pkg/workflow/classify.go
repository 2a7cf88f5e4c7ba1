package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/llm"
)

// ClassificationNode resolves the user's intent into one label from the
// closed set, with a confidence value. It never aborts the workflow: any
// provider or parse failure degrades to unknown/0 and the run continues.
type ClassificationNode struct {
	provider llm.Provider
	logger   logger.ILogger
}

var _ Node = &ClassificationNode{}

func NewClassificationNode(provider llm.Provider, log logger.ILogger) *ClassificationNode {
	return &ClassificationNode{provider: provider, logger: log}
}

func (n *ClassificationNode) Name() string { return "classification" }

type classificationResult struct {
	QueryType  string  `json:"query_type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func (n *ClassificationNode) Run(ctx context.Context, st *State) error {
	prompt := n.buildPrompt(st.Message, st.History)

	// Temperature 0 keeps classification deterministic for a given model
	response, err := n.provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		st.QueryType = QueryTypeUnknown
		st.IntentConfidence = 0
		return fmt.Errorf("intent classification: %w", err)
	}

	result, err := parseClassification(response)
	if err != nil {
		st.QueryType = QueryTypeUnknown
		st.IntentConfidence = 0
		return err
	}

	label := strings.ToLower(strings.TrimSpace(result.QueryType))
	if !KnownQueryType(label) {
		// Labels outside the closed set map to unknown
		label = string(QueryTypeUnknown)
	}

	st.QueryType = QueryType(label)
	st.IntentConfidence = clamp01(result.Confidence)

	n.logger.Info("workflow", "Intent classified", map[string]interface{}{
		"query_type": st.QueryType,
		"confidence": st.IntentConfidence,
		"session_id": st.SessionId,
	})
	return nil
}

func (n *ClassificationNode) buildPrompt(message string, history []llm.Message) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You classify messages sent to a university assistant. Your ONLY job is to label the message.\n")
	prompt.WriteString("You do NOT answer questions.\n")
	prompt.WriteString("</system>\n\n")

	if len(history) > 0 {
		prompt.WriteString("<conversation_context>\n")
		start := len(history) - 3
		if start < 0 {
			start = 0
		}
		for _, msg := range history[start:] {
			content := msg.Content
			if runes := []rune(content); len(runes) > 80 {
				content = string(runes[:80])
			}
			prompt.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, content))
		}
		prompt.WriteString("</conversation_context>\n\n")
	}

	prompt.WriteString("<user_message>\n")
	prompt.WriteString(message)
	prompt.WriteString("\n</user_message>\n\n")

	prompt.WriteString("<labels>\n")
	prompt.WriteString("document_qa: question answerable from official university documents (regulations, requirements, deadlines)\n")
	prompt.WriteString("procedure: question about how to carry out an administrative or academic procedure\n")
	prompt.WriteString("complaint: a problem report or complaint about a university service\n")
	prompt.WriteString("general_info: greetings, thanks, small talk, or anything not covered above\n")
	prompt.WriteString("unknown: gibberish or impossible to classify\n")
	prompt.WriteString("</labels>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\"query_type\": \"document_qa|procedure|complaint|general_info|unknown\", \"confidence\": 0.95, \"reasoning\": \"brief explanation\"}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func parseClassification(response string) (*classificationResult, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("%w: no JSON found in response", ErrClassificationParse)
	}

	var result classificationResult
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassificationParse, err)
	}
	if result.QueryType == "" {
		return nil, fmt.Errorf("%w: missing query_type", ErrClassificationParse)
	}
	return &result, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
