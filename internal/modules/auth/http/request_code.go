package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
)

var validate = validator.New()

type requestCodeReq struct {
	Email string `json:"email" validate:"required,email"`
}

type requestCodeResp struct {
	OK   bool   `json:"ok"`
	Code string `json:"code,omitempty"` // dev mode only
}

func RequestCodeHandler(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestCodeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_EMAIL",
				"message":    "Invalid email address",
			})
		}

		code, err := svc.RequestCode(c.Context(), req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidEmail) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error_code": "INVALID_EMAIL",
					"message":    "Invalid email address",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not issue a sign-in code",
			})
		}

		return c.JSON(requestCodeResp{OK: true, Code: code})
	}
}
