package workflow

import (
	"fmt"

	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/retrieval"
)

// QueryType is the closed set of intents the assistant understands.
type QueryType string

const (
	QueryTypeDocumentQA  QueryType = "document_qa"
	QueryTypeComplaint   QueryType = "complaint"
	QueryTypeGeneralInfo QueryType = "general_info"
	QueryTypeProcedure   QueryType = "procedure"
	QueryTypeUnknown     QueryType = "unknown"
)

// KnownQueryType reports whether label belongs to the closed intent set.
func KnownQueryType(label string) bool {
	switch QueryType(label) {
	case QueryTypeDocumentQA, QueryTypeComplaint, QueryTypeGeneralInfo, QueryTypeProcedure, QueryTypeUnknown:
		return true
	}
	return false
}

// StepError is one recoverable failure captured during a run. The run
// continues with a degraded response; nothing in here ever aborts it.
type StepError struct {
	Step    string
	Message string
}

func (e StepError) String() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

// State is the mutable record threaded through one workflow invocation.
// It is owned exclusively by the engine for the duration of the run and
// is never shared between concurrent conversations.
type State struct {
	// Identity, copied from the request
	UserId    string
	SessionId string
	Message   string
	History   []llm.Message
	Metadata  map[string]string

	// Classification output. QueryType is set exactly once, before any
	// content-producing node runs, and never overwritten afterward.
	QueryType        QueryType
	IntentConfidence float64

	// Context assembly output
	Passages       []retrieval.Passage
	ContextSummary string

	// Final response fields
	ResponseText       string
	ResponseConfidence float64
	Sources            []retrieval.Passage
	SuggestedActions   []string

	// Diagnostics
	Trace  []string
	Errors []StepError
}

func NewState(userId, sessionId, message string, history []llm.Message) *State {
	return &State{
		UserId:    userId,
		SessionId: sessionId,
		Message:   message,
		History:   history,
	}
}

func (s *State) AppendTrace(step string) {
	s.Trace = append(s.Trace, step)
}

func (s *State) RecordError(step string, err error) {
	if err == nil {
		return
	}
	s.Errors = append(s.Errors, StepError{Step: step, Message: err.Error()})
}

// Degraded reports whether any recoverable failure happened during the run.
func (s *State) Degraded() bool {
	return len(s.Errors) > 0
}

// BestSimilarity returns the highest score among retrieved passages,
// or 0 when nothing was retrieved.
func (s *State) BestSimilarity() float64 {
	best := 0.0
	for _, p := range s.Passages {
		if p.Similarity > best {
			best = p.Similarity
		}
	}
	return best
}
