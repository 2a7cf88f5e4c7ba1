package mapper

import (
	"time"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/model"
)

type ComplaintMapper struct{}

func NewComplaintMapper() *ComplaintMapper {
	return &ComplaintMapper{}
}

func (m *ComplaintMapper) ToEntity(c *model.Complaint) *entity.Complaint {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Complaint{
		Id:          c.Id,
		ShortId:     c.ShortId,
		UserId:      c.UserId,
		SessionId:   c.SessionId,
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ComplaintMapper) ToModel(c *entity.Complaint) *model.Complaint {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Complaint{
		Id:          c.Id,
		ShortId:     c.ShortId,
		UserId:      c.UserId,
		SessionId:   c.SessionId,
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
