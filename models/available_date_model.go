package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailableDate is a single bookable face-to-face slot. (Date, StartTime) is
// unique; a booked slot carries a back-reference to the booking holding it.
type AvailableDate struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Date      time.Time  `gorm:"type:date;not null;uniqueIndex:idx_available_dates_date_start" json:"date"`
	StartTime string     `gorm:"size:5;not null;uniqueIndex:idx_available_dates_date_start" json:"start_time"`
	EndTime   string     `gorm:"size:5;not null" json:"end_time"`
	IsBooked  bool       `gorm:"not null;default:false" json:"is_booked"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
