package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type createCategoryReq struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func CreateCategoryHandler(restaurants domain.RestaurantRepo, categories domain.CategoryRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := ownedRestaurant(c, restaurants, c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not create the category")
		}

		var req createCategoryReq
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

		cat, err := categories.Create(c.Context(), rest.ID, req.Name)
		if err != nil {
			return serverError(c, "Could not create the category")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id": cat.ID, "name": cat.Name, "sort_order": cat.SortOrder,
		})
	}
}

func DeleteCategoryHandler(restaurants domain.RestaurantRepo, categories domain.CategoryRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := categories.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not delete the category")
		}
		// ownership runs through the parent restaurant
		if _, err := ownedRestaurant(c, restaurants, cat.RestaurantID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not delete the category")
		}
		if err := categories.Delete(c.Context(), cat.ID); err != nil {
			return serverError(c, "Could not delete the category")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
