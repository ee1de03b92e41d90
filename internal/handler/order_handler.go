package handler

import (
	"go-shop-api/internal/apperr"
	"go-shop-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// Paid marks an order as paid and decrements stock for each line item
// PATCH /api/paid/:id
func (h *OrderHandler) Paid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid transaction ID")
	}

	items, err := h.service.MarkPaid(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Success paid", "data": items})
}

// Histories lists the caller's paid orders
// GET /api/histories
func (h *OrderHandler) Histories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	histories, err := h.service.GetHistories(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Success get data", "data": histories})
}
