package contract

import (
	"context"

	"campus-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)
	FindByShortId(ctx context.Context, shortId string) (*entity.Complaint, error)
	FindByUserId(ctx context.Context, userId string) ([]*entity.Complaint, error)
}
