package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"partsdepot/internal/domain"
	applog "partsdepot/internal/log"
	"partsdepot/internal/repos"
	"partsdepot/internal/services"
	"partsdepot/internal/validate"
)

type OrderHandler struct {
	Svc  *services.CheckoutService
	Repo *repos.OrderRepo
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Repo.ListLatest()
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load orders")
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid order id")
	}
	o, err := h.Repo.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}
	if err != nil {
		applog.Error(c, "order.get.fail", err, map[string]any{"id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not load order")
	}
	return c.JSON(o)
}

type checkoutItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type checkoutRequest struct {
	CustomerName  string         `json:"customer_name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	TotalAmount   int64          `json:"total_amount"`
	PaymentMethod string         `json:"payment_method"`
	Items         []checkoutItem `json:"items"`
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name, ok := validate.Name(req.CustomerName)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "customer_name"})
		return jsonError(c, fiber.StatusBadRequest, "customer_name must be 1-60 characters")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
		return jsonError(c, fiber.StatusBadRequest, "invalid phone number")
	}
	address, ok := validate.Address(req.Address)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "address"})
		return jsonError(c, fiber.StatusBadRequest, "address must be 1-200 characters")
	}
	method, ok := validate.PaymentMethod(req.PaymentMethod)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "payment_method"})
		return jsonError(c, fiber.StatusBadRequest, "unsupported payment method")
	}

	lines := make([]services.CheckoutLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.CheckoutLine{
			ProductID: it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	res, err := h.Svc.Place(services.CheckoutRequest{
		CustomerName:  name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		PaymentMethod: method,
		TotalAmount:   req.TotalAmount,
		Lines:         lines,
	})
	if err != nil {
		var vErr *services.ValidationError
		var shortErr *services.StockShortageError
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			applog.Security(c, "validation.fail", map[string]any{"field": "items"})
			return jsonError(c, fiber.StatusBadRequest, "order has no items")
		case errors.As(err, &vErr):
			applog.Security(c, "validation.fail", map[string]any{"field": vErr.Field})
			return jsonError(c, fiber.StatusBadRequest, vErr.Error())
		case errors.Is(err, services.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, err.Error())
		case errors.As(err, &shortErr):
			applog.Info(c, "order.shortage", map[string]any{
				"product_id": shortErr.ProductID,
				"requested":  shortErr.Requested,
				"available":  shortErr.Available,
			})
			return jsonError(c, fiber.StatusConflict, shortErr.Error())
		default:
			applog.Error(c, "order.place.fail", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, "could not process order")
		}
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":       res.OrderID,
		"transaction_id": res.TransactionID,
		"server_total":   res.Total,
		"client_total":   res.ClientTotal,
		"mismatch":       res.Total != res.ClientTotal,
	})

	return c.JSON(fiber.Map{
		"success":        true,
		"order_id":       res.OrderID,
		"transaction_id": res.TransactionID,
		"message":        "order processed successfully",
	})
}
