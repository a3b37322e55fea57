package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/api/dto"
	"github.com/spec-kit/mess-service/internal/service"
)

// OrdersHandler exposes order placement and listing.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Place handles POST /order.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Items == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "items and name required")
	}

	result, err := h.orders.Place(c.Context(), service.PlaceOrderInput{
		Items:        req.Items,
		Name:         req.Name,
		MessPass:     req.MessPass,
		Preorder:     req.Preorder,
		Category:     req.Category,
		PayAtCounter: req.PayAtCounter,
	})
	if err != nil {
		return err
	}

	response := fiber.Map{"status": result.Status}
	if result.Message != "" {
		response["msg"] = result.Message
	}
	return c.JSON(response)
}

// List handles GET /orders. With a mess_pass query parameter it returns that
// student's history; without one it returns the full ledger.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	messPass := c.Query("mess_pass")
	if messPass == "" {
		return h.AdminList(c)
	}

	history, err := h.orders.HistoryFor(c.Context(), messPass)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

// AdminList handles GET /admin/orders.
func (h *OrdersHandler) AdminList(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
