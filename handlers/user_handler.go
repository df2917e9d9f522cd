package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	config "github.com/edutrackhq/edutrack/configs"
	"github.com/edutrackhq/edutrack/database"
	"github.com/edutrackhq/edutrack/models"
)

func AdminListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func AdminToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "User status updated",
		"is_active": user.IsActive,
	})
}

// AdminResetBalance is the one path that sets a balance directly instead of
// going through the ledger. The reset is still recorded as a transaction so
// the audit trail explains the jump.
func AdminResetBalance(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	newBalance := config.SignupBonus()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		delta := newBalance - user.Balance
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("balance", newBalance).Error; err != nil {
			return err
		}

		txn := models.Transaction{
			UserID:      user.ID,
			Type:        models.TxnTypeDebit,
			Amount:      delta,
			Status:      models.TxnStatusApproved,
			Description: "Administrative balance reset",
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Balance reset",
		"balance": newBalance,
	})
}

func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot delete an admin account"})
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
