package models

import (
	"time"

	"github.com/google/uuid"
)

type RecordedSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	VideoLink   string    `gorm:"size:255;not null" json:"video_link"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
