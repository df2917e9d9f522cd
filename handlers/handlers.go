package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/edutrackhq/edutrack/apperrors"
	"github.com/edutrackhq/edutrack/models"
)

var validate = validator.New()

func currentClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("user").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := uuid.Parse(currentClaims(c)["user_id"].(string))
	return id
}

func currentRole(c *fiber.Ctx) string {
	return currentClaims(c)["role"].(string)
}

func isAdmin(c *fiber.Ctx) bool {
	return currentRole(c) == models.RoleAdmin
}

// respondError is the single place workflow errors become HTTP responses.
// Taxonomy errors surface their message; anything else is logged and
// returned as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	if code == fiber.StatusInternalServerError {
		log.Printf("🔥 Internal error | Path: %s | %v", c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"error": "Something went wrong, please try again."})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
