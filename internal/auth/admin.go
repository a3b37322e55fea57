package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/spec-kit/mess-service/internal/config"
)

// AdminAuth guards admin routes with HTTP Basic against the configured
// admin identity. Any credential mismatch is rejected with 401.
func AdminAuth(cfg config.AdminConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.Username: cfg.Password,
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "invalid admin credentials",
				},
			})
		},
	})
}
