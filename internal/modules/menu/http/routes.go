package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/infra"
	pgrepo "github.com/dpandit24/digital-menu-management-system/internal/modules/menu/infra/pg"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

var validate = validator.New()

// Module wires up dependencies for the menu HTTP module.
type Module struct {
	restaurants domain.RestaurantRepo
	categories  domain.CategoryRepo
	dishes      domain.DishRepo
	codec       *security.SessionCodec
	// PublicBaseURL prefixes the /r/<slug> links encoded in QR images.
	publicBaseURL string
}

// NewModule runs on in-memory repos; handy for tests and demos.
func NewModule(codec *security.SessionCodec, publicBaseURL string) *Module {
	store := infra.NewMemStore()
	return &Module{
		restaurants:   store.Restaurants(),
		categories:    store.Categories(),
		dishes:        store.Dishes(),
		codec:         codec,
		publicBaseURL: publicBaseURL,
	}
}

// NewModulePG creates PG-based repos.
func NewModulePG(db *pgxpool.Pool, codec *security.SessionCodec, publicBaseURL string) *Module {
	return &Module{
		restaurants:   pgrepo.NewRestaurantRepo(db),
		categories:    pgrepo.NewCategoryRepo(db),
		dishes:        pgrepo.NewDishRepo(db),
		codec:         codec,
		publicBaseURL: publicBaseURL,
	}
}

func (m *Module) Register(r fiber.Router) {
	// -------- public --------
	pub := r.Group("/public")
	pub.Get("/menu/:slug", PublicMenuHandler(m.restaurants, m.categories, m.dishes))
	pub.Get("/menu/:slug/qr.png", MenuQRHandler(m.restaurants, m.publicBaseURL))

	// -------- protected (middleware scoped per prefix) --------
	auth := plathttp.SessionAuth(m.codec)

	rg := r.Group("/restaurants", auth)
	rg.Post("/", CreateRestaurantHandler(m.restaurants))
	rg.Get("/", ListRestaurantsHandler(m.restaurants))
	rg.Get("/:id", GetRestaurantHandler(m.restaurants, m.categories, m.dishes))
	rg.Delete("/:id", DeleteRestaurantHandler(m.restaurants))
	rg.Post("/:id/categories", CreateCategoryHandler(m.restaurants, m.categories))
	rg.Post("/:id/dishes", CreateDishHandler(m.restaurants, m.dishes))

	cg := r.Group("/categories", auth)
	cg.Delete("/:id", DeleteCategoryHandler(m.restaurants, m.categories))

	dg := r.Group("/dishes", auth)
	dg.Delete("/:id", DeleteDishHandler(m.restaurants, m.dishes))
}

// ownedRestaurant loads a restaurant and checks it belongs to the caller.
// Foreign and missing objects are the same 404 so owners cannot probe each
// other's ids.
func ownedRestaurant(c *fiber.Ctx, repo domain.RestaurantRepo, id string) (*domain.Restaurant, error) {
	rest, err := repo.GetByID(c.Context(), id)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != plathttp.UserID(c) {
		return nil, domain.ErrNotFound
	}
	return rest, nil
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error_code": "NOT_FOUND",
		"message":    "Not found",
	})
}

func serverError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error_code": "SERVER_ERROR",
		"message":    msg,
	})
}
