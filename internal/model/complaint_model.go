package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Complaint struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShortId     string         `gorm:"type:varchar(16);uniqueIndex"`
	UserId      string         `gorm:"type:varchar(64);index"`
	SessionId   string         `gorm:"type:varchar(64);index"`
	Title       string         `gorm:"type:varchar(255)"`
	Category    string         `gorm:"type:varchar(32)"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(16);default:open"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Complaint) TableName() string {
	return "complaints"
}
