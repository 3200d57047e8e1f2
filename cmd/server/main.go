package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/config"
	"github.com/TanpaKamil/admin/internal/db"
	transport "github.com/TanpaKamil/admin/internal/http"
	"github.com/TanpaKamil/admin/internal/http/middleware"
	"github.com/TanpaKamil/admin/internal/repo"
	"github.com/TanpaKamil/admin/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(context.Background())

	if err := db.EnsureSeedData(ctx, database, cfg.RequestTimeout); err != nil {
		logger.Error("failed to seed data", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(database.Users(), cfg.RequestTimeout)
	moduleRepo := repo.NewModuleRepo(database.Modules(), cfg.RequestTimeout)

	router := transport.NewRouter(transport.Dependencies{
		Config:      cfg,
		Auth:        services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry),
		Modules:     services.NewModuleService(moduleRepo),
		Users:       services.NewUserService(userRepo),
		Dashboard:   services.NewDashboardService(userRepo, moduleRepo),
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
