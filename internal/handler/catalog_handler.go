package handler

import (
	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists the catalog with size rows, most recently updated first
// GET /api/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Success get data", "data": products})
}

// GetProduct fetches one product with its size rows
// GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid product ID")
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Success get data", "data": product})
}

// CreateProduct adds a catalog entry with its size rows (admin only)
// POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// UpdateProduct edits a catalog entry (admin only)
// PUT /api/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return apperr.BadRequest("Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, &product)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}
