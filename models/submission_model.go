package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubmissionStatusPending  = "PENDING"
	SubmissionStatusApproved = "APPROVED"
	SubmissionStatusRejected = "REJECTED"
)

// Submission is a student's task summary awaiting or past grading. At most
// one submission per (task, user) may be PENDING or APPROVED at a time.
type Submission struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TaskID   uuid.UUID `gorm:"not null;index" json:"task_id"`
	UserID   uuid.UUID `gorm:"not null;index" json:"user_id"`
	Summary  string    `gorm:"type:text;not null" json:"summary"`
	Status   string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Score    *int      `json:"score,omitempty"`
	Feedback *string   `gorm:"type:text" json:"feedback,omitempty"`

	Task Task `gorm:"foreignkey:TaskID" json:"task,omitempty"`
	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
