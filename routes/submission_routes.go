package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/handlers"
	"github.com/edutrackhq/edutrack/middleware"
)

func SubmissionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	submissions := api.Group("/submissions", middleware.Protected())
	submissions.Get("", handlers.ListSubmissions)
	submissions.Post("", handlers.CreateSubmission)
	submissions.Get("/:submissionId", handlers.GetSubmission)
	submissions.Patch("/:submissionId", middleware.AdminRequired(), handlers.GradeSubmission)
	submissions.Delete("/:submissionId", middleware.AdminRequired(), handlers.DeleteSubmission)
}
