package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dpandit24/digital-menu-management-system/internal/db"
	authhttp "github.com/dpandit24/digital-menu-management-system/internal/modules/auth/http"
	menuhttp "github.com/dpandit24/digital-menu-management-system/internal/modules/menu/http"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/config"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/logging"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/notify"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

const sessionIssuer = "dmms"

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(ctx, cfg.PGDSN); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	cancel()

	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()

	var sender notify.CodeSender
	if cfg.SMTPHost != "" {
		sender = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		sender = notify.NewLogSender(log)
	}

	codec := security.NewSessionCodec(cfg.JWTSecret, sessionIssuer, cfg.SessionTTL)

	authModule := authhttp.NewModulePG(dbpool, authhttp.Options{
		Codec:        codec,
		Sender:       sender,
		Logger:       log,
		CodeTTL:      cfg.CodeTTL,
		DevMode:      cfg.DevMode(),
		SecureCookie: cfg.Production(),
	})
	menuModule := menuhttp.NewModulePG(dbpool, codec, cfg.PublicBaseURL)

	app := plathttp.NewServer(plathttp.Options{AppName: "dmms"}, authModule, menuModule)

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
