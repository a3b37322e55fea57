package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/session"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

const messPassKey = "session_mess_pass"

// SessionMiddleware resolves the session cookie into a mess pass.
type SessionMiddleware struct {
	cookieName string
	sessions   *session.Registry
}

// NewSessionMiddleware constructs middleware over the given registry.
func NewSessionMiddleware(cookieName string, sessions *session.Registry) *SessionMiddleware {
	return &SessionMiddleware{cookieName: cookieName, sessions: sessions}
}

// Handle rejects requests without a live session and stashes the resolved
// mess pass for downstream handlers.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	messPass, ok := m.sessions.Resolve(token)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	c.Locals(messPassKey, messPass)
	return c.Next()
}

// MessPassFromContext retrieves the mess pass set by Handle.
func MessPassFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(messPassKey)
	if val == nil {
		return "", false
	}
	messPass, ok := val.(string)
	return messPass, ok
}
