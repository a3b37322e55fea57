package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/menu"
)

// MenuHandler exposes the menu catalog to students and admins.
type MenuHandler struct {
	catalog *menu.Catalog
}

// NewMenuHandler constructs handler.
func NewMenuHandler(catalog *menu.Catalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// Get handles GET /menu (session required).
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	sections, err := h.catalog.Load(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sections)
}

// AdminGet handles GET /admin/menu.
func (h *MenuHandler) AdminGet(c *fiber.Ctx) error {
	return h.Get(c)
}

// AdminUpdate handles POST /admin/menu: overwrites the catalog file.
func (h *MenuHandler) AdminUpdate(c *fiber.Ctx) error {
	var items []domain.MenuItem
	if err := c.BodyParser(&items); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.catalog.Save(c.Context(), items); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success"})
}
