package handler

import (
	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles customer registration
// POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return h.register(c, model.RoleCustomer)
}

// RegisterAdmin handles admin registration
// POST /admin/register
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	return h.register(c, model.RoleAdmin)
}

func (h *AuthHandler) register(c *fiber.Ctx, role model.Role) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	user, err := h.authService.Register(&req, role)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Success registered user",
		"data":    user.ToResponse(),
	})
}

// Login handles user authentication
// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(response)
}
