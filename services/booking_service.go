package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edutrackhq/edutrack/apperrors"
	config "github.com/edutrackhq/edutrack/configs"
	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

type CreateBookingInput struct {
	StudentID         uuid.UUID
	SessionType       string
	RecordedSessionID *uuid.UUID
	AvailableDateID   *uuid.UUID
	WhatsappNumber    string
	StudentNotes      *string
}

// ValidateCreateBookingInput checks the session-type-specific required
// fields before any database work.
func ValidateCreateBookingInput(in CreateBookingInput) error {
	switch in.SessionType {
	case models.SessionTypeRecorded:
		if in.RecordedSessionID == nil {
			return apperrors.NewValidation("recorded_session_id is required for recorded sessions")
		}
	case models.SessionTypeFaceToFace:
		if in.AvailableDateID == nil {
			return apperrors.NewValidation("selected_date_id is required for face-to-face sessions")
		}
		if in.WhatsappNumber == "" {
			return apperrors.NewValidation("whatsapp_number is required for face-to-face sessions")
		}
	default:
		return apperrors.NewValidation("session_type must be RECORDED or FACE_TO_FACE")
	}
	return nil
}

// CreateBooking purchases a recorded session or reserves a face-to-face
// slot. Availability re-check, balance charge, booking row and slot
// reservation all commit or roll back as one unit; a failed step leaves no
// partial state behind.
func CreateBooking(db *gorm.DB, in CreateBookingInput) (*models.MentorshipBooking, error) {
	if err := ValidateCreateBookingInput(in); err != nil {
		return nil, err
	}

	mentor, err := database.Mentor(db)
	if err != nil {
		return nil, err
	}

	var booking models.MentorshipBooking
	err = db.Transaction(func(tx *gorm.DB) error {
		if in.SessionType == models.SessionTypeRecorded {
			var recorded models.RecordedSession
			if err := tx.First(&recorded, "id = ?", *in.RecordedSessionID).Error; err != nil {
				return apperrors.NewNotFound("recorded session not found")
			}
			if !recorded.IsActive {
				return apperrors.NewConflict("this recorded session is no longer available")
			}

			booking = models.MentorshipBooking{
				StudentID:         in.StudentID,
				MentorID:          mentor.ID,
				SessionType:       models.SessionTypeRecorded,
				Duration:          60,
				Amount:            recorded.Price,
				Status:            models.BookingStatusConfirmed,
				RecordedSessionID: &recorded.ID,
				VideoLink:         &recorded.VideoLink,
				StudentNotes:      in.StudentNotes,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}

			return Charge(tx, in.StudentID, recorded.Price, models.TxnTypeRecordedSession,
				fmt.Sprintf("Recorded session: %s", recorded.Title))
		}

		var slot models.AvailableDate
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", *in.AvailableDateID).Error; err != nil {
			return apperrors.NewNotFound("slot not found")
		}
		if slot.IsBooked {
			return apperrors.NewConflict("slot no longer available")
		}

		rate := config.FaceToFaceRate()
		sessionDate := slot.Date
		whatsapp := in.WhatsappNumber

		booking = models.MentorshipBooking{
			StudentID:        in.StudentID,
			MentorID:         mentor.ID,
			SessionType:      models.SessionTypeFaceToFace,
			Duration:         60,
			Amount:           rate,
			Status:           models.BookingStatusPending,
			SessionDate:      &sessionDate,
			SessionStartTime: &slot.StartTime,
			SessionEndTime:   &slot.EndTime,
			AvailableDateID:  &slot.ID,
			WhatsappNumber:   &whatsapp,
			StudentNotes:     in.StudentNotes,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if err := Charge(tx, in.StudentID, rate, models.TxnTypeFaceToFaceSession,
			fmt.Sprintf("Face-to-face session on %s %s", slot.Date.Format("2006-01-02"), slot.StartTime)); err != nil {
			return err
		}

		return ReserveSlot(tx, slot.ID, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// AllowedTransition reports whether a booking may move between the two
// statuses. COMPLETED and CANCELLED are terminal.
func AllowedTransition(from, to string) bool {
	switch from {
	case models.BookingStatusPending:
		return to == models.BookingStatusConfirmed || to == models.BookingStatusCancelled
	case models.BookingStatusConfirmed:
		return to == models.BookingStatusCompleted || to == models.BookingStatusCancelled
	default:
		return false
	}
}

func refundType(sessionType string) string {
	if sessionType == models.SessionTypeRecorded {
		return models.TxnTypeRecordedSession
	}
	return models.TxnTypeFaceToFaceSession
}

type UpdateBookingInput struct {
	BookingID   uuid.UUID
	Status      *string
	SessionDate *time.Time
	MeetingLink *string
	AdminNotes  *string
}

// UpdateBooking applies admin-driven changes: status transitions (with
// atomic slot release and ledger refund on cancellation), reschedules, and
// plain field writes. A reschedule that finds no open slot on the new date
// is rejected rather than leaving the booking pointing at a date with no
// reserved slot.
func UpdateBooking(db *gorm.DB, in UpdateBookingInput) (*models.MentorshipBooking, error) {
	var booking models.MentorshipBooking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", in.BookingID).Error; err != nil {
			return apperrors.NewNotFound("booking not found")
		}

		if in.SessionDate != nil {
			if err := rescheduleBooking(tx, &booking, *in.SessionDate); err != nil {
				return err
			}
		}

		if in.Status != nil {
			if err := transitionBooking(tx, &booking, *in.Status); err != nil {
				return err
			}
		}

		if in.MeetingLink != nil {
			booking.MeetingLink = in.MeetingLink
		}
		if in.AdminNotes != nil {
			booking.AdminNotes = in.AdminNotes
		}

		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func transitionBooking(tx *gorm.DB, booking *models.MentorshipBooking, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
	default:
		return apperrors.NewValidation("invalid booking status")
	}
	if !AllowedTransition(booking.Status, status) {
		return apperrors.NewConflict(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, status))
	}

	if status == models.BookingStatusCancelled {
		if booking.AvailableDateID != nil {
			if err := ReleaseSlot(tx, *booking.AvailableDateID); err != nil {
				return err
			}
			booking.AvailableDateID = nil
		}
		if err := Refund(tx, booking.StudentID, booking.Amount, refundType(booking.SessionType),
			"Refund for cancelled mentorship session"); err != nil {
			return err
		}
	}

	booking.Status = status
	return nil
}

func rescheduleBooking(tx *gorm.DB, booking *models.MentorshipBooking, newDate time.Time) error {
	if booking.SessionType != models.SessionTypeFaceToFace {
		return apperrors.NewValidation("only face-to-face bookings can be rescheduled")
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return apperrors.NewConflict("cannot reschedule a " + booking.Status + " booking")
	}

	targetStart := rescheduleTargetStart(newDate, booking.SessionStartTime)
	dateOnly := time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, time.UTC)

	var slot models.AvailableDate
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ? AND is_booked = ?", dateOnly.Format("2006-01-02"), false)
	if targetStart != "" {
		query = query.Where("start_time = ?", targetStart)
	}
	if err := query.Order("start_time ASC").First(&slot).Error; err != nil {
		return apperrors.NewConflict("no available slot matches the requested date")
	}

	if booking.AvailableDateID != nil {
		if err := ReleaseSlot(tx, *booking.AvailableDateID); err != nil {
			return err
		}
	}
	if err := ReserveSlot(tx, slot.ID, booking.ID); err != nil {
		return err
	}

	if !booking.DateChanged {
		booking.OriginalSessionDate = booking.SessionDate
	}
	booking.DateChanged = true
	booking.SessionDate = &dateOnly
	booking.SessionStartTime = &slot.StartTime
	booking.SessionEndTime = &slot.EndTime
	booking.AvailableDateID = &slot.ID
	return nil
}

// rescheduleTargetStart picks the start time to look for on the new date: a
// non-midnight clock on the requested date wins, otherwise the booking's
// current start time, otherwise any slot that day.
func rescheduleTargetStart(newDate time.Time, current *string) string {
	if newDate.Hour() != 0 || newDate.Minute() != 0 {
		return newDate.Format("15:04")
	}
	if current != nil {
		return *current
	}
	return ""
}

// ListStudentBookings returns the student's bookings, newest first.
func ListStudentBookings(db *gorm.DB, studentID uuid.UUID) ([]models.MentorshipBooking, error) {
	var bookings []models.MentorshipBooking
	err := db.Preload("RecordedSession").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListAllBookings returns every booking for the admin dashboard.
func ListAllBookings(db *gorm.DB) ([]models.MentorshipBooking, error) {
	var bookings []models.MentorshipBooking
	err := db.Preload("Student").Preload("RecordedSession").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
