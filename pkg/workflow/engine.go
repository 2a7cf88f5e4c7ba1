package workflow

import (
	"context"

	"campus-assistant-be/internal/pkg/logger"
)

// Step is a position in the conversation pipeline.
type Step string

const (
	StepInitialized     Step = "initialized"
	StepClassified      Step = "classified"
	StepDocumentSearch  Step = "document_search"
	StepComplaintIntake Step = "complaint_intake"
	StepGeneralResponse Step = "general_response"
	StepFormatted       Step = "formatted"
	StepDone            Step = "done"
)

// Engine drives one conversation turn through the fixed pipeline:
// classify, branch on intent, format. Node errors are recorded on the
// state and the run keeps going, so every invocation ends at StepDone
// with a non-empty response. The only hard stop is context cancellation.
type Engine struct {
	classification  Node
	documentSearch  Node
	complaintIntake Node
	generalResponse Node
	formatting      Node
	logger          logger.ILogger
}

func NewEngine(classification, documentSearch, complaintIntake, generalResponse, formatting Node, log logger.ILogger) *Engine {
	return &Engine{
		classification:  classification,
		documentSearch:  documentSearch,
		complaintIntake: complaintIntake,
		generalResponse: generalResponse,
		formatting:      formatting,
		logger:          log,
	}
}

// Run executes the pipeline on st. It returns an error only when ctx
// was cancelled mid-run; in that case st still carries the timeout
// reply. In every other outcome the error is nil and st.ResponseText is
// populated, degraded or not.
func (e *Engine) Run(ctx context.Context, st *State) error {
	step := StepInitialized

	for step != StepDone {
		if err := ctx.Err(); err != nil {
			st.ResponseText = TimeoutResponse
			st.ResponseConfidence = 0.1
			st.AppendTrace("timed_out")
			return err
		}

		switch step {
		case StepInitialized:
			e.runNode(ctx, e.classification, st)
			step = StepClassified

		case StepClassified:
			step = routeIntent(st.QueryType)

		case StepDocumentSearch:
			e.runNode(ctx, e.documentSearch, st)
			if st.Degraded() && len(st.Passages) == 0 {
				// Retrieval broke; draft an answer without documents
				step = StepGeneralResponse
			} else {
				step = StepFormatted
			}

		case StepComplaintIntake:
			e.runNode(ctx, e.complaintIntake, st)
			step = StepFormatted

		case StepGeneralResponse:
			e.runNode(ctx, e.generalResponse, st)
			step = StepFormatted

		case StepFormatted:
			e.runNode(ctx, e.formatting, st)
			step = StepDone

		default:
			e.logger.Error("workflow", "Unreachable pipeline step", map[string]interface{}{
				"step":       string(step),
				"session_id": st.SessionId,
			})
			step = StepFormatted
		}
	}

	if st.ResponseText == "" {
		st.ResponseText = FallbackResponse
		st.ResponseConfidence = 0.1
	}
	st.AppendTrace(string(StepDone))
	return nil
}

// routeIntent maps the classified intent to its branch. Unknown and
// off-set labels share the general branch, which still produces a reply.
func routeIntent(qt QueryType) Step {
	switch qt {
	case QueryTypeDocumentQA, QueryTypeProcedure:
		return StepDocumentSearch
	case QueryTypeComplaint:
		return StepComplaintIntake
	default:
		return StepGeneralResponse
	}
}

func (e *Engine) runNode(ctx context.Context, node Node, st *State) {
	st.AppendTrace(node.Name())
	if err := node.Run(ctx, st); err != nil {
		st.RecordError(node.Name(), err)
		e.logger.Warn("workflow", "Pipeline step degraded", map[string]interface{}{
			"step":       node.Name(),
			"error":      err.Error(),
			"session_id": st.SessionId,
		})
	}
}
