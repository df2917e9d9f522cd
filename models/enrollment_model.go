package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_user_platform" json:"user_id"`
	PlatformID uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_user_platform" json:"platform_id"`

	Platform Platform `gorm:"foreignkey:PlatformID" json:"platform,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
