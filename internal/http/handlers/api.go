package handlers

import "github.com/gofiber/fiber/v2"

// API dispatches the storefront protocol: one path, the operation named by
// the "endpoint" query parameter.
type API struct {
	Products *ProductHandler
	Orders   *OrderHandler
}

func (a *API) Get(c *fiber.Ctx) error {
	switch c.Query("endpoint") {
	case "products":
		return a.Products.List(c)
	case "product":
		return a.Products.Detail(c)
	case "orders":
		return a.Orders.List(c)
	case "order":
		return a.Orders.Detail(c)
	default:
		return endpointNotFound(c)
	}
}

func (a *API) Post(c *fiber.Ctx) error {
	switch c.Query("endpoint") {
	case "checkout":
		return a.Orders.Checkout(c)
	case "update_stock":
		return a.Products.UpdateStock(c)
	default:
		return endpointNotFound(c)
	}
}

// MethodNotAllowed answers anything that isn't GET or POST.
func (a *API) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "method not allowed"})
}
