package infra

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
)

// MemStore backs all three in-memory repos so restaurant deletion can
// cascade the same way the PG transaction does.
type MemStore struct {
	mu          sync.RWMutex
	restaurants map[string]*domain.Restaurant
	categories  map[string]*domain.Category
	dishes      map[string]*domain.Dish
	links       []memLink // dish -> category, in assignment order
}

type memLink struct {
	dishID     string
	categoryID string
	assignedAt time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		restaurants: make(map[string]*domain.Restaurant),
		categories:  make(map[string]*domain.Category),
		dishes:      make(map[string]*domain.Dish),
	}
}

func (s *MemStore) Restaurants() domain.RestaurantRepo { return &memRestaurantRepo{s} }
func (s *MemStore) Categories() domain.CategoryRepo    { return &memCategoryRepo{s} }
func (s *MemStore) Dishes() domain.DishRepo            { return &memDishRepo{s} }

type memRestaurantRepo struct{ s *MemStore }

func (r *memRestaurantRepo) Create(_ context.Context, p domain.CreateRestaurantParams) (*domain.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rest := &domain.Restaurant{
		ID:        uuid.New().String(),
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Location:  p.Location,
		Slug:      p.Slug,
		CreatedAt: time.Now().UTC(),
	}
	r.s.restaurants[rest.ID] = rest
	cp := *rest
	return &cp, nil
}

func (r *memRestaurantRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rest, ok := r.s.restaurants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rest
	return &cp, nil
}

func (r *memRestaurantRepo) GetBySlug(_ context.Context, slug string) (*domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rest := range r.s.restaurants {
		if rest.Slug == slug {
			cp := *rest
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRestaurantRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Restaurant{}
	for _, rest := range r.s.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, *rest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memRestaurantRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rest := range r.s.restaurants {
		if rest.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRestaurantRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[id]; !ok {
		return domain.ErrNotFound
	}
	kept := r.s.links[:0]
	for _, l := range r.s.links {
		d := r.s.dishes[l.dishID]
		c := r.s.categories[l.categoryID]
		if (d != nil && d.RestaurantID == id) || (c != nil && c.RestaurantID == id) {
			continue
		}
		kept = append(kept, l)
	}
	r.s.links = kept
	for did, d := range r.s.dishes {
		if d.RestaurantID == id {
			delete(r.s.dishes, did)
		}
	}
	for cid, c := range r.s.categories {
		if c.RestaurantID == id {
			delete(r.s.categories, cid)
		}
	}
	delete(r.s.restaurants, id)
	return nil
}

type memCategoryRepo struct{ s *MemStore }

func (r *memCategoryRepo) Create(_ context.Context, restaurantID, name string) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maxOrder := 0
	for _, c := range r.s.categories {
		if c.RestaurantID == restaurantID && c.SortOrder > maxOrder {
			maxOrder = c.SortOrder
		}
	}
	c := &domain.Category{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		SortOrder:    maxOrder + 1,
		CreatedAt:    time.Now().UTC(),
	}
	r.s.categories[c.ID] = c
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Category{}
	for _, c := range r.s.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	kept := r.s.links[:0]
	for _, l := range r.s.links {
		if l.categoryID == id {
			continue
		}
		kept = append(kept, l)
	}
	r.s.links = kept
	delete(r.s.categories, id)
	return nil
}

type memDishRepo struct{ s *MemStore }

func (r *memDishRepo) Create(_ context.Context, p domain.CreateDishParams) (*domain.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d := &domain.Dish{
		ID:           uuid.New().String(),
		RestaurantID: p.RestaurantID,
		Name:         p.Name,
		ImageURL:     p.ImageURL,
		Description:  p.Description,
		PriceCents:   p.PriceCents,
		SpiceLevel:   p.SpiceLevel,
		CreatedAt:    time.Now().UTC(),
	}
	r.s.dishes[d.ID] = d
	now := time.Now().UTC()
	for _, cid := range p.CategoryIDs {
		r.s.links = append(r.s.links, memLink{dishID: d.ID, categoryID: cid, assignedAt: now})
	}
	cp := *d
	return &cp, nil
}

func (r *memDishRepo) GetByID(_ context.Context, id string) (*domain.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.dishes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *memDishRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]domain.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Dish{}
	for _, d := range r.s.dishes {
		if d.RestaurantID == restaurantID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memDishRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Dish{}
	for _, l := range r.s.links {
		if l.categoryID != categoryID {
			continue
		}
		if d, ok := r.s.dishes[l.dishID]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memDishRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dishes[id]; !ok {
		return domain.ErrNotFound
	}
	kept := r.s.links[:0]
	for _, l := range r.s.links {
		if l.dishID == id {
			continue
		}
		kept = append(kept, l)
	}
	r.s.links = kept
	delete(r.s.dishes, id)
	return nil
}
