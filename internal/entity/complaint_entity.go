package entity

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	Id          uuid.UUID
	ShortId     string // human-friendly tracking id shown to the user
	UserId      string
	SessionId   string
	Title       string
	Category    string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Complaint status values
const (
	ComplaintStatusOpen     = "open"
	ComplaintStatusReviewed = "reviewed"
	ComplaintStatusClosed   = "closed"
)
