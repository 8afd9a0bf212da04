package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mybusnow/internal/assistant"
	"mybusnow/internal/config"
	"mybusnow/internal/controllers"
	"mybusnow/internal/logger"
	"mybusnow/internal/metrics"
	"mybusnow/internal/middleware"
	"mybusnow/internal/repository"
	"mybusnow/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	// Structured logging to stdout and a rotating file
	logWriter := logger.Setup(cfg.Log.Level, cfg.Log.File)
	if logger.ParseLevel(cfg.Log.Level) < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.Database, logger.GormLevel(logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		logrus.WithError(err).Fatal("Database setup failed")
	}
	logrus.Info("Connected to PostgreSQL and migrated schema")

	users := repository.NewGormUserStore(db)
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := users.EnsureAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			logrus.WithError(err).Fatal("Could not create admin account")
		}
	}

	m := metrics.New()
	llm := assistant.NewHTTPClient(cfg.Assistant.URL, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
	if cfg.Assistant.URL == "" {
		logrus.Warn("ASSISTANT_URL not set, chat will answer with the fallback reply")
	}

	auth := middleware.NewAuth(cfg.Auth.JWTSecret)
	ctrl := controllers.New(controllers.Deps{
		Routes:    repository.NewCachedRoutes(repository.NewGormRouteStore(db), cfg.Cache.TTL),
		Buses:     repository.NewCachedBuses(repository.NewGormBusStore(db), cfg.Cache.TTL),
		Users:     users,
		Assistant: assistant.New(llm, m.ObserveAssistant),
		Auth:      auth,
		Metrics:   m,
	})

	limiter := middleware.NewRateLimiter(cfg.Assistant.RatePerMin)
	r := routes.SetupRouter(ctrl, routes.Options{
		Auth:      auth,
		Limiter:   limiter,
		Metrics:   m,
		LogWriter: logWriter,
	})

	srv := newServer(cfg, middleware.CORS(cfg.Server.CORSOrigins)(r))
	if err := run(srv, limiter); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
