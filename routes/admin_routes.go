package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/handlers"
	"github.com/edutrackhq/edutrack/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.AdminListUsers)
	users.Put("/:userId/status", handlers.AdminToggleUserStatus)
	users.Post("/:userId/reset-balance", handlers.AdminResetBalance)
	users.Delete("/:userId", handlers.AdminDeleteUser)
}
