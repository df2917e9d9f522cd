package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

func ListPlatforms(c *fiber.Ctx) error {
	var platforms []models.Platform
	if err := database.DB.Preload("Tasks").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&platforms).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"platforms": platforms})
}

func EnrollInPlatform(c *fiber.Ctx) error {
	platformID, err := uuid.Parse(c.Params("platformId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid platform id"})
	}

	var platform models.Platform
	if err := database.DB.First(&platform, "id = ? AND is_active = ?", platformID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Platform not found"})
	}

	enrollment := models.Enrollment{
		UserID:     currentUserID(c),
		PlatformID: platformID,
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already enrolled in this platform"})
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Enrolled successfully",
		"enrollment": enrollment,
	})
}

func AdminListPlatforms(c *fiber.Ctx) error {
	var platforms []models.Platform
	if err := database.DB.Preload("Tasks").Order("name ASC").Find(&platforms).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"platforms": platforms})
}

type PlatformRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
}

func AdminCreatePlatform(c *fiber.Ctx) error {
	var req PlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	platform := models.Platform{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		IsActive:    true,
	}
	if err := database.DB.Create(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A platform with this name already exists"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(platform)
}

type UpdatePlatformRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func AdminUpdatePlatform(c *fiber.Ctx) error {
	platformID := c.Params("platformId")

	var req UpdatePlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var platform models.Platform
	if err := database.DB.First(&platform, "id = ?", platformID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Platform not found"})
	}

	if req.Name != nil {
		platform.Name = *req.Name
	}
	if req.Description != nil {
		platform.Description = *req.Description
	}
	if req.URL != nil {
		platform.URL = *req.URL
	}
	if req.IsActive != nil {
		platform.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&platform).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(platform)
}

type TaskRequest struct {
	Title       string `json:"title" validate:"required,min=2"`
	Description string `json:"description"`
	Points      int    `json:"points" validate:"gte=0"`
}

func AdminCreateTask(c *fiber.Ctx) error {
	platformID, err := uuid.Parse(c.Params("platformId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid platform id"})
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var platform models.Platform
	if err := database.DB.First(&platform, "id = ?", platformID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Platform not found"})
	}

	task := models.Task{
		PlatformID:  platformID,
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	}
	if err := database.DB.Create(&task).Error; err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func AdminDeleteTask(c *fiber.Ctx) error {
	taskID := c.Params("taskId")

	res := database.DB.Delete(&models.Task{}, "id = ?", taskID)
	if res.Error != nil {
		return respondError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
