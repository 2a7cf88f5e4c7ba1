package implementation

import (
	"context"
	"errors"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/mapper"
	"campus-assistant-be/internal/model"
	"campus-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &ComplaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplaintMapper(),
	}
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ToModel(complaint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var m model.Complaint
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplaintRepositoryImpl) FindByShortId(ctx context.Context, shortId string) (*entity.Complaint, error) {
	var m model.Complaint
	if err := r.db.WithContext(ctx).First(&m, "short_id = ?", shortId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplaintRepositoryImpl) FindByUserId(ctx context.Context, userId string) ([]*entity.Complaint, error) {
	var models []*model.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.Complaint, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
