package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edutrackhq/edutrack/handlers"
	"github.com/edutrackhq/edutrack/middleware"
)

func WalletRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Protected())
	wallet.Get("", handlers.GetWallet)
	wallet.Get("/transactions", handlers.GetWalletTransactions)
	wallet.Post("/topup", handlers.RequestTopUp)

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/topups", handlers.ListPendingTopUps)
	admin.Post("/topups/resolve", handlers.ResolveTopUp)
}
