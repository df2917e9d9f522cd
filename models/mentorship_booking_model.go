package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionTypeRecorded   = "RECORDED"
	SessionTypeFaceToFace = "FACE_TO_FACE"

	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// MentorshipBooking records a purchased recorded session or a reserved
// face-to-face slot. Amount is fixed at purchase time and never follows
// later catalog price changes.
type MentorshipBooking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"not null;index" json:"student_id"`
	MentorID    uuid.UUID `gorm:"not null" json:"mentor_id"`
	SessionType string    `gorm:"size:20;not null" json:"session_type"`
	Duration    int       `gorm:"not null;default:60" json:"duration"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	SessionDate      *time.Time `json:"session_date,omitempty"`
	SessionStartTime *string    `gorm:"size:5" json:"session_start_time,omitempty"`
	SessionEndTime   *string    `gorm:"size:5" json:"session_end_time,omitempty"`
	AvailableDateID  *uuid.UUID `json:"available_date_id,omitempty"`
	WhatsappNumber   *string    `gorm:"size:20" json:"whatsapp_number,omitempty"`

	DateChanged         bool       `gorm:"default:false" json:"date_changed"`
	OriginalSessionDate *time.Time `json:"original_session_date,omitempty"`

	RecordedSessionID *uuid.UUID `json:"recorded_session_id,omitempty"`
	VideoLink         *string    `gorm:"size:255" json:"video_link,omitempty"`
	MeetingLink       *string    `gorm:"size:255" json:"meeting_link,omitempty"`

	StudentNotes *string `gorm:"type:text" json:"student_notes,omitempty"`
	AdminNotes   *string `gorm:"type:text" json:"admin_notes,omitempty"`

	Student         User            `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Mentor          User            `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	RecordedSession RecordedSession `gorm:"foreignkey:RecordedSessionID" json:"recorded_session,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
