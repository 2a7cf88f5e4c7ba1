package workflow

// FallbackResponse is the fixed reply for a run where the generator
// itself failed. It is always paired with confidence 0.1.
const FallbackResponse = "I'm sorry, I ran into a problem while processing your message. Could you try again in a moment?"

// TimeoutResponse is returned when the whole invocation was cancelled
// before the pipeline could finish.
const TimeoutResponse = "I'm sorry, your request took too long to process and was cancelled. Please try again."

// noContextResponse guides the user when a document question matched
// nothing in the index.
const noContextResponse = "I couldn't find anything specific about that in the university documents. Could you rephrase your question or use different keywords? I can help with academic procedures, important deadlines and university regulations."

// complaintDetailResponse asks for more detail when complaint intake
// rejected the message.
const complaintDetailResponse = "I'd like to register your report, but I need a bit more detail. Please describe what happened, where, and when, so the administrative team can follow up."

func suggestedActionsFor(qt QueryType, degraded bool) []string {
	if degraded {
		return []string{"Try rephrasing your question"}
	}
	switch qt {
	case QueryTypeDocumentQA, QueryTypeProcedure:
		return []string{
			"Ask for more detail on this topic",
			"Ask about another procedure or regulation",
		}
	case QueryTypeComplaint:
		return []string{
			"Keep your report id for follow-up",
			"Report another problem",
		}
	default:
		return []string{
			"Ask about academic procedures",
			"Search the official university documents",
			"Report a problem",
		}
	}
}
