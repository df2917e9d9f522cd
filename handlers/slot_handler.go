package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/services"
)

func AdminListSlots(c *fiber.Ctx) error {
	slots, err := services.ListAllSlots(database.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"slots": slots})
}

type CreateSlotRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func AdminCreateSlot(c *fiber.Ctx) error {
	var req CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	slot, err := services.CreateSlot(database.DB, date, req.StartTime, req.EndTime)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"slot": slot})
}

type GenerateWeekRequest struct {
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02"`
}

func AdminGenerateWeek(c *fiber.Ctx) error {
	var req GenerateWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)

	created, err := services.GenerateWeeklyTemplate(database.DB, weekStart)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Weekly slots generated",
		"slots_created": created,
	})
}

func AdminDeleteSlot(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slot id"})
	}

	if err := services.DeleteSlot(database.DB, slotID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Slot deleted"})
}
