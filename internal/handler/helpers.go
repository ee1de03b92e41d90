package handler

import (
	"go-shop-api/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk ambil User ID dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return id, nil
}
