package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/services"
)

type CreateSubmissionRequest struct {
	TaskID  string `json:"task_id" validate:"required,uuid"`
	Summary string `json:"summary" validate:"required,min=20"`
}

func CreateSubmission(c *fiber.Ctx) error {
	var req CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	taskID, _ := uuid.Parse(req.TaskID)

	submission, err := services.SubmitSummary(database.DB, currentUserID(c), taskID, req.Summary)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

func ListSubmissions(c *fiber.Ctx) error {
	submissions, err := services.ListSubmissions(database.DB, currentUserID(c), isAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"submissions": submissions})
}

func GetSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	submission, err := services.GetSubmission(database.DB, submissionID)
	if err != nil {
		return respondError(c, err)
	}
	if submission.UserID != currentUserID(c) && !isAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this submission"})
	}
	return c.JSON(submission)
}

type GradeSubmissionRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Score    *int    `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Feedback *string `json:"feedback,omitempty"`
}

func GradeSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	var req GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	submission, err := services.GradeSubmission(database.DB, submissionID, services.GradeSubmissionInput{
		Status:   req.Status,
		Score:    req.Score,
		Feedback: req.Feedback,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(submission)
}

func DeleteSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	if err := services.DeleteSubmission(database.DB, submissionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Submission deleted"})
}
