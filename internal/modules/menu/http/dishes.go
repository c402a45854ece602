package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type createDishReq struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	Description string   `json:"description" validate:"required,min=1,max=1000"`
	PriceCents  int      `json:"price_cents" validate:"gte=0"`
	SpiceLevel  *int     `json:"spice_level" validate:"omitempty,gte=0,lte=5"`
	CategoryIDs []string `json:"category_ids"`
}

func CreateDishHandler(restaurants domain.RestaurantRepo, dishes domain.DishRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := ownedRestaurant(c, restaurants, c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not create the dish")
		}

		var req createDishReq
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

		d, err := dishes.Create(c.Context(), domain.CreateDishParams{
			RestaurantID: rest.ID,
			Name:         req.Name,
			ImageURL:     req.ImageURL,
			Description:  req.Description,
			PriceCents:   req.PriceCents,
			SpiceLevel:   req.SpiceLevel,
			CategoryIDs:  req.CategoryIDs,
		})
		if err != nil {
			return serverError(c, "Could not create the dish")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": d.ID})
	}
}

func DeleteDishHandler(restaurants domain.RestaurantRepo, dishes domain.DishRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := dishes.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not delete the dish")
		}
		if _, err := ownedRestaurant(c, restaurants, d.RestaurantID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not delete the dish")
		}
		if err := dishes.Delete(c.Context(), d.ID); err != nil {
			return serverError(c, "Could not delete the dish")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
