package handler

import (
	"go-shop-api/internal/apperr"
	"go-shop-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	service service.CheckoutService
}

func NewCheckoutHandler(s service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// CheckoutRequest represents the checkout request body
type CheckoutRequest struct {
	Carts []service.CartItem `json:"carts"`
}

// TokenRequest represents the token regeneration request body
type TokenRequest struct {
	TransactionID uuid.UUID `json:"TransactionId"`
}

// Checkout creates an Unpaid order from the submitted cart and returns a
// payment token for it
// POST /api/checkout
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Checkout(userID, req.Carts)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Success checkout product",
		"carts":         result.Carts,
		"transaction":   result.Transaction,
		"midtransToken": result.MidtransToken,
	})
}

// GenerateToken issues a fresh payment token for an existing order
// POST /api/midtrans-token
func (h *CheckoutHandler) GenerateToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	token, err := h.service.RegenerateToken(userID, req.TransactionID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(token)
}
