package infra

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
)

type memUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byEmail map[string]string       // email -> id
}

func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memUserRepo) Create(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byEmail[email]; ok {
		cp := *r.users[id]
		return &cp, nil
	}
	now := time.Now().UTC()
	u := &domain.User{ID: uuid.New().String(), Email: email, CreatedAt: now, UpdatedAt: now}
	r.users[u.ID] = u
	r.byEmail[email] = u.ID
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id, fullName, country string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.FullName = fullName
	u.Country = country
	u.UpdatedAt = time.Now().UTC()
	return nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens []*domain.LoginToken
}

func NewMemTokenRepo() domain.TokenRepo {
	return &memTokenRepo{}
}

func (r *memTokenRepo) Create(_ context.Context, t domain.LoginToken) (*domain.LoginToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	cp := t
	r.tokens = append(r.tokens, &cp)
	out := cp
	return &out, nil
}

func (r *memTokenRepo) FindUsable(_ context.Context, email, code string, now time.Time) (*domain.LoginToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// newest first
	for i := len(r.tokens) - 1; i >= 0; i-- {
		t := r.tokens[i]
		if t.Email == email && t.Code == code && t.Usable(now) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrInvalidCode
}

func (r *memTokenRepo) Consume(_ context.Context, tokenID, userID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.ID != tokenID {
			continue
		}
		// compare-and-set under the lock: only one caller wins
		if !t.Usable(now) {
			return domain.ErrInvalidCode
		}
		used := now
		uid := userID
		t.UsedAt = &used
		t.UserID = &uid
		return nil
	}
	return domain.ErrInvalidCode
}
