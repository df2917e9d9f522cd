package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'student'" json:"role"`
	WalletNumber string    `gorm:"size:10;unique" json:"wallet_number"`

	Balance float64 `gorm:"type:numeric(10,2);not null;default:0.00" json:"balance"`

	IsMentor   bool     `gorm:"default:false" json:"is_mentor"`
	MentorBio  *string  `gorm:"type:text" json:"mentor_bio,omitempty"`
	MentorRate *float64 `gorm:"type:numeric(10,2)" json:"mentor_rate,omitempty"`

	IsActive bool `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
