package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
)

type verifyCodeReq struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=4,max=10"`
}

func VerifyCodeHandler(svc *auth.Service, secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verifyCodeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_CODE",
				"message":    "Invalid code",
			})
		}

		res, err := svc.VerifyCode(c.Context(), req.Email, req.Code)
		if err != nil {
			// one opaque answer for wrong, expired and used codes
			if errors.Is(err, domain.ErrInvalidCode) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error_code": "INVALID_CODE",
					"message":    "Invalid code",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not verify the code",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     plathttp.SessionCookie,
			Value:    res.Credential,
			Path:     "/",
			Expires:  res.ExpiresAt,
			Secure:   secureCookie,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(fiber.Map{"ok": true})
	}
}
