package models

import (
	"time"

	"github.com/google/uuid"
)

type Platform struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null;unique" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:255" json:"url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Tasks []Task `gorm:"foreignkey:PlatformID" json:"tasks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
