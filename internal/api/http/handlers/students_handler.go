package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/api/dto"
	"github.com/spec-kit/mess-service/internal/service"
	"github.com/spec-kit/mess-service/internal/session"
)

// StudentsHandler exposes registration, login/logout and the admin roster.
type StudentsHandler struct {
	identity   *service.IdentityService
	sessions   *session.Registry
	cookieName string
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(identity *service.IdentityService, sessions *session.Registry, cookieName string) *StudentsHandler {
	return &StudentsHandler{identity: identity, sessions: sessions, cookieName: cookieName}
}

// Register handles POST /register.
func (h *StudentsHandler) Register(c *fiber.Ctx) error {
	var req dto.StudentRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Enrollment == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, enrollment, password required")
	}

	student, err := h.identity.Register(c.Context(), req.Name, req.Enrollment, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"mess_pass": student.MessPass,
	})
}

// Login handles POST /login and sets the session cookie.
func (h *StudentsHandler) Login(c *fiber.Ctx) error {
	var req dto.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Enrollment == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "enrollment and password required")
	}

	student, err := h.identity.Authenticate(c.Context(), req.Enrollment, req.Password)
	if err != nil {
		return err
	}

	token, err := h.sessions.Create(student.MessPass)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"status":    "success",
		"mess_pass": student.MessPass,
	})
}

// Logout handles POST /logout. Destroying an unknown or absent session is a no-op.
func (h *StudentsHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		h.sessions.Destroy(token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"status": "logged out"})
}

// AdminList handles GET /students: every student with their latest subscription.
func (h *StudentsHandler) AdminList(c *fiber.Ctx) error {
	students, err := h.identity.ListWithSubscription(c.Context())
	if err != nil {
		return err
	}

	result := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		result = append(result, fiber.Map{
			"id":                    s.ID,
			"name":                  s.Name,
			"enrollment":            s.Enrollment,
			"mess_pass":             s.MessPass,
			"created_at":            s.CreatedAt,
			"subscription_duration": s.SubscriptionDuration,
			"subscription_status":   s.SubscriptionStatus,
		})
	}
	return c.JSON(result)
}
