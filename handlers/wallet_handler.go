package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
	"github.com/edutrackhq/edutrack/notifications"
	"github.com/edutrackhq/edutrack/services"
)

func GetWallet(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", currentUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"balance":       user.Balance,
		"wallet_number": user.WalletNumber,
	})
}

func GetWalletTransactions(c *fiber.Ctx) error {
	txns, err := services.ListTransactions(database.DB, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"transactions": txns})
}

type TopUpRequest struct {
	Amount             float64 `json:"amount" validate:"required,gt=0"`
	SenderWalletNumber string  `json:"sender_wallet_number" validate:"required,min=4"`
}

func RequestTopUp(c *fiber.Ctx) error {
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	txn, err := services.RequestTopUp(database.DB, currentUserID(c), req.Amount, req.SenderWalletNumber)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Top-up request submitted and awaiting approval.",
		"transaction": txn,
	})
}

func ListPendingTopUps(c *fiber.Ctx) error {
	txns, err := services.ListPendingTopUps(database.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"topups": txns})
}

type ResolveTopUpRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,uuid"`
	Action        string `json:"action" validate:"required,oneof=APPROVE REJECT"`
}

func ResolveTopUp(c *fiber.Ctx) error {
	var req ResolveTopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	txnID, _ := uuid.Parse(req.TransactionID)

	txn, err := services.ResolveTopUp(database.DB, txnID, req.Action)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.NotifyTopUpResolved(txn)

	return c.JSON(fiber.Map{
		"message":     "Top-up request processed successfully",
		"transaction": txn,
	})
}
