package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/api/dto"
	"github.com/spec-kit/mess-service/internal/service"
)

// PreordersHandler exposes preorder submission, review and listing.
type PreordersHandler struct {
	preorders *service.PreorderService
}

// NewPreordersHandler constructs handler.
func NewPreordersHandler(preorders *service.PreorderService) *PreordersHandler {
	return &PreordersHandler{preorders: preorders}
}

// Submit handles POST /preorder.
func (h *PreordersHandler) Submit(c *fiber.Ctx) error {
	var req dto.PreorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Items == "" || req.Name == "" || req.Enrollment == "" {
		return fiber.NewError(http.StatusBadRequest, "name, enrollment, items required")
	}

	if _, err := h.preorders.Submit(c.Context(), req.Name, req.Enrollment, req.Category, req.Items); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "pending",
		"msg":    "Pre-order sent for admin approval.",
	})
}

// AdminList handles GET /admin/preorders.
func (h *PreordersHandler) AdminList(c *fiber.Ctx) error {
	preorders, err := h.preorders.ListAll(c.Context())
	if err != nil {
		return err
	}

	result := make([]fiber.Map, 0, len(preorders))
	for _, p := range preorders {
		result = append(result, fiber.Map{
			"id":         p.ID,
			"name":       p.Name,
			"enrollment": p.Enrollment,
			"category":   p.Category,
			"items":      p.Items,
			"status":     p.Status,
			"created_at": p.CreatedAt,
		})
	}
	return c.JSON(result)
}

// Decide handles POST /admin/preorders/approve?id=&approve=.
func (h *PreordersHandler) Decide(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid preorder id")
	}
	approve, err := strconv.ParseBool(c.Query("approve"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid approve flag")
	}

	status, err := h.preorders.Decide(c.Context(), id, approve)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": status})
}

// StudentList handles GET /student/preorders?mess_pass=.
func (h *PreordersHandler) StudentList(c *fiber.Ctx) error {
	messPass := c.Query("mess_pass")
	if messPass == "" {
		return fiber.NewError(http.StatusBadRequest, "mess_pass required")
	}

	preorders, err := h.preorders.ListForMessPass(c.Context(), messPass)
	if err != nil {
		return err
	}
	return c.JSON(preorders)
}
