package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"partsdepot/internal/domain"
	applog "partsdepot/internal/log"
	"partsdepot/internal/services"
	"partsdepot/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListAvailable()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	if ps == nil {
		ps = []domain.Product{}
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "product.get.fail", err, map[string]any{"id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p)
}

type updateStockRequest struct {
	ID    int64 `json:"id"`
	Stock int   `json:"stock"`
}

// UpdateStock is the administrative overwrite behind ?endpoint=update_stock.
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var req updateStockRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.ID <= 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	if !validate.Stock(req.Stock) {
		applog.Security(c, "validation.fail", map[string]any{"field": "stock"})
		return jsonError(c, fiber.StatusBadRequest, "stock must not be negative")
	}

	if err := h.Catalog.SetStock(req.ID, req.Stock); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "stock.update.fail", err, map[string]any{"id": req.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not update stock")
	}

	applog.Audit(c, "stock.update", map[string]any{"id": req.ID, "stock": req.Stock})
	return c.JSON(fiber.Map{"success": true})
}
