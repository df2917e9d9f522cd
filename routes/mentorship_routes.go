package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/handlers"
	"github.com/edutrackhq/edutrack/middleware"
)

func MentorshipRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	mentorship := api.Group("/mentorship", middleware.Protected())
	mentorship.Get("", handlers.GetMentorship)
	mentorship.Post("", handlers.CreateMentorshipBooking)

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/mentorship", handlers.AdminGetBookings)
	admin.Patch("/mentorship", handlers.AdminUpdateBooking)

	slots := admin.Group("/slots")
	slots.Get("", handlers.AdminListSlots)
	slots.Post("", handlers.AdminCreateSlot)
	slots.Post("/generate-week", handlers.AdminGenerateWeek)
	slots.Delete("/:slotId", handlers.AdminDeleteSlot)

	recorded := admin.Group("/recorded-sessions")
	recorded.Get("", handlers.AdminListRecordedSessions)
	recorded.Post("", handlers.AdminCreateRecordedSession)
	recorded.Put("/:sessionId", handlers.AdminUpdateRecordedSession)
	recorded.Delete("/:sessionId", handlers.AdminDeactivateRecordedSession)
}
