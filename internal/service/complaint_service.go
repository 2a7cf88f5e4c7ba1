package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/pkg/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplaintService interface {
	workflow.ComplaintSubmitter
	GetByShortId(ctx context.Context, shortId string) (*dto.ComplaintResponse, error)
	ListByUser(ctx context.Context, userId string) ([]dto.ComplaintResponse, error)
}

type complaintService struct {
	complaintRepository contract.ComplaintRepository
	logger              logger.ILogger
}

func NewComplaintService(complaintRepository contract.ComplaintRepository, log logger.ILogger) IComplaintService {
	return &complaintService{
		complaintRepository: complaintRepository,
		logger:              log,
	}
}

func (s *complaintService) Submit(ctx context.Context, candidate workflow.ComplaintCandidate) (*workflow.ComplaintConfirmation, error) {
	id := uuid.New()
	complaint := entity.Complaint{
		Id:          id,
		ShortId:     shortIdFrom(id),
		UserId:      candidate.UserId,
		SessionId:   candidate.SessionId,
		Title:       candidate.Title,
		Category:    candidate.Category,
		Description: candidate.Description,
		Status:      entity.ComplaintStatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.complaintRepository.Create(ctx, &complaint); err != nil {
		return nil, fmt.Errorf("store complaint: %w", err)
	}

	s.logger.Info("complaint", "Complaint stored", map[string]interface{}{
		"short_id": complaint.ShortId,
		"category": complaint.Category,
	})

	return &workflow.ComplaintConfirmation{
		ComplaintId: complaint.Id.String(),
		ShortId:     complaint.ShortId,
	}, nil
}

func (s *complaintService) GetByShortId(ctx context.Context, shortId string) (*dto.ComplaintResponse, error) {
	complaint, err := s.complaintRepository.FindByShortId(ctx, shortId)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Complaint not found")
	}
	res := toComplaintResponse(complaint)
	return &res, nil
}

func (s *complaintService) ListByUser(ctx context.Context, userId string) ([]dto.ComplaintResponse, error) {
	complaints, err := s.complaintRepository.FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, toComplaintResponse(c))
	}
	return responses, nil
}

func toComplaintResponse(c *entity.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		Id:        c.Id,
		ShortId:   c.ShortId,
		Title:     c.Title,
		Category:  c.Category,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

// shortIdFrom derives the human-friendly tracking id shown in chat
// replies from the complaint uuid.
func shortIdFrom(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
