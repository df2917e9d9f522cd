package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

func AdminListRecordedSessions(c *fiber.Ctx) error {
	var sessions []models.RecordedSession
	if err := database.DB.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"recorded_sessions": sessions})
}

type RecordedSessionRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	VideoLink   string  `json:"video_link" validate:"required,url"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

func AdminCreateRecordedSession(c *fiber.Ctx) error {
	var req RecordedSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := models.RecordedSession{
		Title:       req.Title,
		Description: req.Description,
		VideoLink:   req.VideoLink,
		Price:       req.Price,
		IsActive:    true,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

type UpdateRecordedSessionRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string  `json:"description,omitempty"`
	VideoLink   *string  `json:"video_link,omitempty" validate:"omitempty,url"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// AdminUpdateRecordedSession edits the catalog entry. Existing bookings are
// unaffected; their amount was fixed at purchase time.
func AdminUpdateRecordedSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req UpdateRecordedSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.RecordedSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recorded session not found"})
	}

	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Description != nil {
		session.Description = *req.Description
	}
	if req.VideoLink != nil {
		session.VideoLink = *req.VideoLink
	}
	if req.Price != nil {
		session.Price = *req.Price
	}
	if req.IsActive != nil {
		session.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&session).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// AdminDeactivateRecordedSession soft-disables a catalog entry so it stops
// appearing to students without breaking past bookings.
func AdminDeactivateRecordedSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	res := database.DB.Model(&models.RecordedSession{}).
		Where("id = ?", sessionID).
		Update("is_active", false)
	if res.Error != nil {
		return respondError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recorded session not found"})
	}
	return c.JSON(fiber.Map{"message": "Recorded session deactivated"})
}
