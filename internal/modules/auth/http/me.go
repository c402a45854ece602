package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
)

type profileResp struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`
}

func GetMeHandler(users domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := users.GetByID(c.Context(), plathttp.UserID(c))
		if err != nil {
			// a signed credential for a vanished user is "no identity"
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error_code": "UNAUTHORIZED",
					"message":    "Sign in required",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not load profile",
			})
		}
		return c.JSON(profileResp{ID: u.ID, Email: u.Email, FullName: u.FullName, Country: u.Country})
	}
}

type updateMeReq struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Country  string `json:"country" validate:"required,min=2,max=100"`
}

func UpdateMeHandler(users domain.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateMeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Invalid request body",
			})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "VALIDATION_ERROR",
				"message":    err.Error(),
			})
		}

		uid := plathttp.UserID(c)
		if err := users.UpdateProfile(c.Context(), uid, req.FullName, req.Country); err != nil {
			// same as GetMe: a credential for a vanished user is "no identity"
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error_code": "UNAUTHORIZED",
					"message":    "Sign in required",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not update profile",
			})
		}
		u, err := users.GetByID(c.Context(), uid)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SERVER_ERROR",
				"message":    "Could not load profile",
			})
		}
		return c.JSON(profileResp{ID: u.ID, Email: u.Email, FullName: u.FullName, Country: u.Country})
	}
}
