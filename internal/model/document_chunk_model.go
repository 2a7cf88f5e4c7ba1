package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DocumentTitle  string          `gorm:"type:text"`
	Content        string          `gorm:"type:text"`
	ChunkIndex     int             `gorm:"default:0"` // 0-based index for ordering
	Locator        string          `gorm:"type:varchar(128)"`
	DocumentType   string          `gorm:"type:varchar(64);index"`
	Faculty        string          `gorm:"type:varchar(128);index"`
	AcademicYear   string          `gorm:"type:varchar(16)"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
