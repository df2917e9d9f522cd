package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	config "github.com/edutrackhq/edutrack/configs"
	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
	"github.com/edutrackhq/edutrack/notifications"
	"github.com/edutrackhq/edutrack/services"
)

// GetMentorship returns everything the booking page needs: the mentor
// profile, pricing, the student's bookings, open slots and the recorded
// catalog.
func GetMentorship(c *fiber.Ctx) error {
	mentor, err := database.Mentor(database.DB)
	if err != nil {
		return respondError(c, err)
	}

	bookings, err := services.ListStudentBookings(database.DB, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	slots, err := services.ListAvailableSlots(database.DB, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	var recorded []models.RecordedSession
	if err := database.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&recorded).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"mentor": fiber.Map{
			"full_name": mentor.FullName,
			"bio":       mentor.MentorBio,
			"rate":      mentor.MentorRate,
		},
		"face_to_face_rate": config.FaceToFaceRate(),
		"bookings":          bookings,
		"available_slots":   slots,
		"recorded_sessions": recorded,
	})
}

type CreateMentorshipRequest struct {
	SessionType       string  `json:"session_type" validate:"required,oneof=RECORDED FACE_TO_FACE"`
	RecordedSessionID *string `json:"recorded_session_id,omitempty" validate:"omitempty,uuid"`
	SelectedDateID    *string `json:"selected_date_id,omitempty" validate:"omitempty,uuid"`
	WhatsappNumber    string  `json:"whatsapp_number,omitempty"`
	StudentNotes      *string `json:"student_notes,omitempty"`
}

func CreateMentorshipBooking(c *fiber.Ctx) error {
	var req CreateMentorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := services.CreateBookingInput{
		StudentID:      currentUserID(c),
		SessionType:    req.SessionType,
		WhatsappNumber: req.WhatsappNumber,
		StudentNotes:   req.StudentNotes,
	}
	if req.RecordedSessionID != nil {
		id, _ := uuid.Parse(*req.RecordedSessionID)
		in.RecordedSessionID = &id
	}
	if req.SelectedDateID != nil {
		id, _ := uuid.Parse(*req.SelectedDateID)
		in.AvailableDateID = &id
	}

	booking, err := services.CreateBooking(database.DB, in)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.NotifyBookingCreated(booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func AdminGetBookings(c *fiber.Ctx) error {
	bookings, err := services.ListAllBookings(database.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

type UpdateMentorshipRequest struct {
	BookingID   string     `json:"booking_id" validate:"required,uuid"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	SessionDate *time.Time `json:"session_date,omitempty"`
	MeetingLink *string    `json:"meeting_link,omitempty"`
	AdminNotes  *string    `json:"admin_notes,omitempty"`
}

func AdminUpdateBooking(c *fiber.Ctx) error {
	var req UpdateMentorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	bookingID, _ := uuid.Parse(req.BookingID)

	booking, err := services.UpdateBooking(database.DB, services.UpdateBookingInput{
		BookingID:   bookingID,
		Status:      req.Status,
		SessionDate: req.SessionDate,
		MeetingLink: req.MeetingLink,
		AdminNotes:  req.AdminNotes,
	})
	if err != nil {
		return respondError(c, err)
	}

	if req.Status != nil && *req.Status == models.BookingStatusCancelled {
		go notifications.NotifyBookingCancelled(booking)
	}

	return c.JSON(fiber.Map{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}
