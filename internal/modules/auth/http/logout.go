package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
)

// LogoutHandler clears the session cookie and sends the caller back to the
// sign-in surface. Sessions are stateless, so a credential copied elsewhere
// before logout stays valid until its natural expiry; there is no
// server-side revocation list.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     plathttp.SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Redirect("/signin", fiber.StatusFound)
	}
}
