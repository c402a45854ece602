package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/domain"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/auth/infra"
	pgrepo "github.com/dpandit24/digital-menu-management-system/internal/modules/auth/infra/pg"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/notify"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

// Module wires up dependencies for the auth HTTP module.
type Module struct {
	svc          *auth.Service
	users        domain.UserRepo
	codec        *security.SessionCodec
	secureCookie bool
}

type Options struct {
	Codec        *security.SessionCodec
	Sender       notify.CodeSender
	Logger       *zap.Logger
	CodeTTL      time.Duration
	DevMode      bool
	SecureCookie bool
}

// NewModule runs on in-memory repos; handy for tests and demos.
func NewModule(opts Options) *Module {
	return newModule(infra.NewMemUserRepo(), infra.NewMemTokenRepo(), opts)
}

// NewModulePG creates PG-based repos.
func NewModulePG(db *pgxpool.Pool, opts Options) *Module {
	return newModule(pgrepo.NewUserRepo(db), pgrepo.NewTokenRepo(db), opts)
}

func newModule(users domain.UserRepo, tokens domain.TokenRepo, opts Options) *Module {
	if opts.CodeTTL == 0 {
		opts.CodeTTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	svc := auth.NewService(users, tokens, opts.Codec, opts.Sender, opts.Logger, opts.CodeTTL, opts.DevMode)
	return &Module{svc: svc, users: users, codec: opts.Codec, secureCookie: opts.SecureCookie}
}

// Service exposes the auth core to other modules and tests.
func (m *Module) Service() *auth.Service { return m.svc }

func (m *Module) Register(r fiber.Router) {
	a := r.Group("/auth")
	a.Post("/request-code", RequestCodeHandler(m.svc))
	a.Post("/verify-code", VerifyCodeHandler(m.svc, m.secureCookie))
	a.Post("/logout", LogoutHandler())

	// session middleware is scoped to /me so it cannot leak onto routes
	// other modules register under the shared prefix
	me := r.Group("/me", plathttp.SessionAuth(m.codec))
	me.Get("/", GetMeHandler(m.users))
	me.Patch("/", UpdateMeHandler(m.users))
}
