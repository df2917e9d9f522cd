package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edutrackhq/edutrack/apperrors"
	"github.com/edutrackhq/edutrack/models"
)

func TestAllowedTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedTransition(tt.from, tt.to))
		})
	}
}

func TestValidateCreateBookingInput(t *testing.T) {
	recordedID := uuid.New()
	slotID := uuid.New()

	t.Run("recorded requires catalog id", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{
			SessionType: models.SessionTypeRecorded,
		})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("recorded with catalog id passes", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{
			SessionType:       models.SessionTypeRecorded,
			RecordedSessionID: &recordedID,
		})
		assert.NoError(t, err)
	})

	t.Run("face-to-face requires slot id", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{
			SessionType:    models.SessionTypeFaceToFace,
			WhatsappNumber: "+201001234567",
		})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("face-to-face requires contact number", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{
			SessionType:     models.SessionTypeFaceToFace,
			AvailableDateID: &slotID,
		})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("face-to-face with slot and contact passes", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{
			SessionType:     models.SessionTypeFaceToFace,
			AvailableDateID: &slotID,
			WhatsappNumber:  "+201001234567",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown session type", func(t *testing.T) {
		err := ValidateCreateBookingInput(CreateBookingInput{SessionType: "LIVE"})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestRefundType(t *testing.T) {
	assert.Equal(t, models.TxnTypeRecordedSession, refundType(models.SessionTypeRecorded))
	assert.Equal(t, models.TxnTypeFaceToFaceSession, refundType(models.SessionTypeFaceToFace))
}

func TestRescheduleTargetStart(t *testing.T) {
	current := "10:00"

	t.Run("explicit clock on the new date wins", func(t *testing.T) {
		newDate := time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC)
		assert.Equal(t, "15:00", rescheduleTargetStart(newDate, &current))
	})

	t.Run("midnight keeps the current start time", func(t *testing.T) {
		newDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "10:00", rescheduleTargetStart(newDate, &current))
	})

	t.Run("no current start means any slot that day", func(t *testing.T) {
		newDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "", rescheduleTargetStart(newDate, nil))
	})
}
