package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/api/dto"
	"github.com/spec-kit/mess-service/internal/auth"
	"github.com/spec-kit/mess-service/internal/service"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

// SubscriptionsHandler exposes the session-gated subscription endpoints.
type SubscriptionsHandler struct {
	subscriptions *service.SubscriptionService
}

// NewSubscriptionsHandler constructs handler.
func NewSubscriptionsHandler(subscriptions *service.SubscriptionService) *SubscriptionsHandler {
	return &SubscriptionsHandler{subscriptions: subscriptions}
}

// Subscribe handles POST /subscribe.
func (h *SubscriptionsHandler) Subscribe(c *fiber.Ctx) error {
	messPass, ok := auth.MessPassFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}

	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Duration == "" {
		return fiber.NewError(http.StatusBadRequest, "duration required")
	}

	sub, err := h.subscriptions.Subscribe(c.Context(), messPass, req.Duration)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":   "success",
		"duration": sub.Duration,
	})
}

// Cancel handles POST /cancel-subscription. Cancelling with no active
// subscription succeeds without changing anything.
func (h *SubscriptionsHandler) Cancel(c *fiber.Ctx) error {
	messPass, ok := auth.MessPassFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}

	if err := h.subscriptions.Cancel(c.Context(), messPass); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Subscription cancelled",
	})
}

// Current handles GET /current-subscription: the latest row, reported only
// while it is active.
func (h *SubscriptionsHandler) Current(c *fiber.Ctx) error {
	messPass, ok := auth.MessPassFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}

	current, err := h.subscriptions.Current(c.Context(), messPass)
	if err != nil {
		return err
	}
	if !current.Active {
		return c.JSON(fiber.Map{"duration": nil, "mess_pass": nil})
	}
	return c.JSON(fiber.Map{"duration": current.Duration, "mess_pass": messPass})
}

// Status handles GET /subscription-status: the latest duration regardless of
// whether the row is still active.
func (h *SubscriptionsHandler) Status(c *fiber.Ctx) error {
	messPass, ok := auth.MessPassFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}

	duration, err := h.subscriptions.Status(c.Context(), messPass)
	if err != nil {
		return err
	}
	if duration == "" {
		return c.JSON(fiber.Map{"subscription": nil})
	}
	return c.JSON(fiber.Map{"subscription": duration})
}
