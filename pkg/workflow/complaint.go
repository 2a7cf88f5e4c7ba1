package workflow

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant-be/internal/pkg/logger"
)

// minComplaintLength is the minimum message length accepted as an
// actionable report.
const minComplaintLength = 10

// ComplaintCandidate is the structured submission extracted from a chat
// message.
type ComplaintCandidate struct {
	UserId      string
	SessionId   string
	Title       string
	Category    string
	Description string
}

// ComplaintConfirmation is what the submission collaborator returns on
// success.
type ComplaintConfirmation struct {
	ComplaintId string
	ShortId     string
}

// ComplaintSubmitter files a structured complaint. Implemented by the
// complaint service; nil when complaint intake is not configured.
type ComplaintSubmitter interface {
	Submit(ctx context.Context, candidate ComplaintCandidate) (*ComplaintConfirmation, error)
}

// Complaint categories assigned by keyword detection.
const (
	CategoryAcademic       = "academic"
	CategoryAdministrative = "administrative"
	CategoryTechnology     = "technology"
	CategoryInfrastructure = "infrastructure"
	CategoryOther          = "other"
)

// ComplaintIntakeNode validates complaint content, derives a title and
// category, and hands the candidate to the submission collaborator.
// Validation failure produces a guidance reply, never a hard failure.
type ComplaintIntakeNode struct {
	submitter ComplaintSubmitter
	logger    logger.ILogger
}

var _ Node = &ComplaintIntakeNode{}

func NewComplaintIntakeNode(submitter ComplaintSubmitter, log logger.ILogger) *ComplaintIntakeNode {
	return &ComplaintIntakeNode{submitter: submitter, logger: log}
}

func (n *ComplaintIntakeNode) Name() string { return "complaint_intake" }

func (n *ComplaintIntakeNode) Run(ctx context.Context, st *State) error {
	message := strings.TrimSpace(st.Message)
	if len([]rune(message)) < minComplaintLength {
		st.ContextSummary = complaintDetailResponse
		return fmt.Errorf("%w: message below minimum length", ErrComplaintValidation)
	}

	if n.submitter == nil {
		st.ContextSummary = complaintDetailResponse
		return fmt.Errorf("%w: complaint submission not configured", ErrComplaintValidation)
	}

	candidate := ComplaintCandidate{
		UserId:      st.UserId,
		SessionId:   st.SessionId,
		Title:       titleFromMessage(message),
		Category:    detectCategory(message),
		Description: message,
	}

	confirmation, err := n.submitter.Submit(ctx, candidate)
	if err != nil {
		st.ContextSummary = "The report could not be registered right now. Ask the user to try again in a few minutes or contact administration directly if urgent."
		return fmt.Errorf("complaint submission: %w", err)
	}

	st.ContextSummary = fmt.Sprintf(
		"Report registered successfully.\nTracking id: #%s\nCategory: %s\nTitle: %s\nThe administrative team will review it; the user can follow up with the tracking id.",
		confirmation.ShortId, candidate.Category, candidate.Title,
	)

	n.logger.Info("workflow", "Complaint registered", map[string]interface{}{
		"short_id":   confirmation.ShortId,
		"category":   candidate.Category,
		"session_id": st.SessionId,
	})
	return nil
}

// titleFromMessage takes the first sentence, bounded to 50 runes.
func titleFromMessage(message string) string {
	title := message
	for _, sep := range []string{". ", "! ", "? ", "\n"} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	runes := []rune(strings.TrimSpace(title))
	if len(runes) > 50 {
		title = string(runes[:50]) + "..."
	}
	return title
}

func detectCategory(text string) string {
	lower := strings.ToLower(text)

	academic := []string{"grade", "exam", "professor", "class", "course", "schedule", "classroom", "laboratory", "lecture"}
	administrative := []string{"enrollment", "registration", "document", "certificate", "payment", "scholarship", "admission", "tuition"}
	technology := []string{"system", "platform", "internet", "wifi", "computer", "application", "website", "login", "password"}
	infrastructure := []string{"building", "bathroom", "elevator", "cafeteria", "library", "parking", "air conditioning", "lighting"}

	switch {
	case containsAny(lower, academic):
		return CategoryAcademic
	case containsAny(lower, administrative):
		return CategoryAdministrative
	case containsAny(lower, technology):
		return CategoryTechnology
	case containsAny(lower, infrastructure):
		return CategoryInfrastructure
	default:
		return CategoryOther
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
