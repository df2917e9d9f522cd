package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/handlers"
	"github.com/edutrackhq/edutrack/middleware"
)

func PlatformRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	platforms := api.Group("/platforms", middleware.Protected())
	platforms.Get("", handlers.ListPlatforms)
	platforms.Post("/:platformId/enroll", handlers.EnrollInPlatform)

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	adminPlatforms := admin.Group("/platforms")
	adminPlatforms.Get("", handlers.AdminListPlatforms)
	adminPlatforms.Post("", handlers.AdminCreatePlatform)
	adminPlatforms.Put("/:platformId", handlers.AdminUpdatePlatform)
	adminPlatforms.Post("/:platformId/tasks", handlers.AdminCreateTask)
	admin.Delete("/tasks/:taskId", handlers.AdminDeleteTask)
}
