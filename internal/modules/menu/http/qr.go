package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

// MenuQRHandler renders a printable QR image pointing at the restaurant's
// public menu page.
func MenuQRHandler(restaurants domain.RestaurantRepo, publicBaseURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := restaurants.GetBySlug(c.Context(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not render the QR code")
		}

		url := fmt.Sprintf("%s/r/%s", publicBaseURL, rest.Slug)
		png, err := qrcode.Encode(url, qrcode.Medium, 240)
		if err != nil {
			return serverError(c, "Could not render the QR code")
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}
}
