package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

// SessionCookie is the name of the HTTP-only cookie carrying the signed
// session credential.
const SessionCookie = "dmms_session"

// SessionAuth resolves the session cookie to a user id. A missing, expired
// or otherwise invalid credential is simply "no identity": the request is
// rejected with 401, never with a server error.
func SessionAuth(codec *security.SessionCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(SessionCookie); raw != "" {
			if uid, err := codec.Verify(raw); err == nil {
				c.Locals("user_id", uid)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error_code": "UNAUTHORIZED",
			"message":    "Sign in required",
		})
	}
}

// UserID returns the authenticated user id set by SessionAuth.
func UserID(c *fiber.Ctx) string {
	uid, _ := c.Locals("user_id").(string)
	return uid
}
