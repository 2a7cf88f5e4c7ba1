package memory

import (
	"context"
	"sync"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ComplaintRepository struct {
	mu         sync.RWMutex
	complaints []*entity.Complaint
}

var _ contract.ComplaintRepository = &ComplaintRepository{}

func NewComplaintRepository() *ComplaintRepository {
	return &ComplaintRepository{}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if complaint.Id == uuid.Nil {
		complaint.Id = uuid.New()
	}
	r.complaints = append(r.complaints, complaint)
	return nil
}

func (r *ComplaintRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.complaints {
		if c.Id == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *ComplaintRepository) FindByShortId(ctx context.Context, shortId string) (*entity.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.complaints {
		if c.ShortId == shortId {
			return c, nil
		}
	}
	return nil, nil
}

func (r *ComplaintRepository) FindByUserId(ctx context.Context, userId string) ([]*entity.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Complaint
	for _, c := range r.complaints {
		if c.UserId == userId {
			out = append(out, c)
		}
	}
	return out, nil
}
