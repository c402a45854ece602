package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

type publicDish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	PriceCents  int    `json:"price_cents"`
	SpiceLevel  *int   `json:"spice_level"`
}

type publicCategory struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Dishes []publicDish `json:"dishes"`
}

type publicMenuResp struct {
	Restaurant struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	} `json:"restaurant"`
	Categories []publicCategory `json:"categories"`
}

// PublicMenuHandler serves the diner-facing menu: categories in sort order,
// dishes in assignment order. No auth.
func PublicMenuHandler(restaurants domain.RestaurantRepo, categories domain.CategoryRepo, dishes domain.DishRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rest, err := restaurants.GetBySlug(c.Context(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound(c)
			}
			return serverError(c, "Could not load the menu")
		}

		cats, err := categories.ListByRestaurant(c.Context(), rest.ID)
		if err != nil {
			return serverError(c, "Could not load the menu")
		}

		resp := publicMenuResp{Categories: make([]publicCategory, 0, len(cats))}
		resp.Restaurant.Name = rest.Name
		resp.Restaurant.Location = rest.Location
		for _, cat := range cats {
			ds, err := dishes.ListByCategory(c.Context(), cat.ID)
			if err != nil {
				return serverError(c, "Could not load the menu")
			}
			pc := publicCategory{ID: cat.ID, Name: cat.Name, Dishes: make([]publicDish, 0, len(ds))}
			for _, d := range ds {
				pc.Dishes = append(pc.Dishes, publicDish{
					ID:          d.ID,
					Name:        d.Name,
					ImageURL:    d.ImageURL,
					Description: d.Description,
					PriceCents:  d.PriceCents,
					SpiceLevel:  d.SpiceLevel,
				})
			}
			resp.Categories = append(resp.Categories, pc)
		}
		return c.JSON(resp)
	}
}
