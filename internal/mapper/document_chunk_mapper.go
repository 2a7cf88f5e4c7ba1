package mapper

import (
	"time"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.DocumentChunk{
		Id:            c.Id,
		DocumentId:    c.DocumentId,
		DocumentTitle: c.DocumentTitle,
		Content:       c.Content,
		ChunkIndex:    c.ChunkIndex,
		Locator:       c.Locator,
		DocumentType:  c.DocumentType,
		Faculty:       c.Faculty,
		AcademicYear:  c.AcademicYear,
		Embedding:     c.EmbeddingValue.Slice(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *DocumentChunkMapper) ToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.DocumentChunk{
		Id:             c.Id,
		DocumentId:     c.DocumentId,
		DocumentTitle:  c.DocumentTitle,
		Content:        c.Content,
		ChunkIndex:     c.ChunkIndex,
		Locator:        c.Locator,
		DocumentType:   c.DocumentType,
		Faculty:        c.Faculty,
		AcademicYear:   c.AcademicYear,
		EmbeddingValue: pgvector.NewVector(c.Embedding),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *DocumentChunkMapper) ToEntities(chunks []*model.DocumentChunk) []*entity.DocumentChunk {
	entities := make([]*entity.DocumentChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *DocumentChunkMapper) ToModels(chunks []*entity.DocumentChunk) []*model.DocumentChunk {
	models := make([]*model.DocumentChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
