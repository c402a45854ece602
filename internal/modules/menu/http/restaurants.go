package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
)

type createRestaurantReq struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Location string `json:"location" validate:"required,min=2,max=200"`
}

func CreateRestaurantHandler(restaurants domain.RestaurantRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createRestaurantReq
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

		slug, err := domain.UniqueSlug(c.Context(), req.Name, restaurants)
		if err != nil {
			return serverError(c, "Could not create the restaurant")
		}
		rest, err := restaurants.Create(c.Context(), domain.CreateRestaurantParams{
			OwnerID:  plathttp.UserID(c),
			Name:     req.Name,
			Location: req.Location,
			Slug:     slug,
		})
		if err != nil {
			return serverError(c, "Could not create the restaurant")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": rest.ID, "slug": rest.Slug})
	}
}

type restaurantResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Slug     string `json:"slug"`
}

func ListRestaurantsHandler(restaurants domain.RestaurantRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := restaurants.ListByOwner(c.Context(), plathttp.UserID(c))
		if err != nil {
			return serverError(c, "Could not list restaurants")
		}
		out := make([]restaurantResp, 0, len(list))
		for _, r := range list {
			out = append(out, restaurantResp{ID: r.ID, Name: r.Name, Location: r.Location, Slug: r.Slug})
		}
		return c.JSON(fiber.Map{"restaurants": out})
	}
}

func GetRestaurantHandler(restaurants domain.RestaurantRepo, categories domain.CategoryRepo, dishes domain.DishRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := ownedRestaurant(c, restaurants, c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not load the restaurant")
		}

		cats, err := categories.ListByRestaurant(c.Context(), rest.ID)
		if err != nil {
			return serverError(c, "Could not load the restaurant")
		}
		ds, err := dishes.ListByRestaurant(c.Context(), rest.ID)
		if err != nil {
			return serverError(c, "Could not load the restaurant")
		}

		catsOut := make([]fiber.Map, 0, len(cats))
		for _, cat := range cats {
			catsOut = append(catsOut, fiber.Map{"id": cat.ID, "name": cat.Name, "sort_order": cat.SortOrder})
		}
		dishesOut := make([]fiber.Map, 0, len(ds))
		for _, d := range ds {
			dishesOut = append(dishesOut, fiber.Map{
				"id": d.ID, "name": d.Name, "image_url": d.ImageURL, "description": d.Description,
				"price_cents": d.PriceCents, "spice_level": d.SpiceLevel,
			})
		}
		return c.JSON(fiber.Map{
			"id": rest.ID, "name": rest.Name, "location": rest.Location, "slug": rest.Slug,
			"categories": catsOut, "dishes": dishesOut,
		})
	}
}

func DeleteRestaurantHandler(restaurants domain.RestaurantRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := ownedRestaurant(c, restaurants, c.Params("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not delete the restaurant")
		}
		if err := restaurants.Delete(c.Context(), rest.ID); err != nil {
			return serverError(c, "Could not delete the restaurant")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
