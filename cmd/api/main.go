package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/router"
)

// @title Pet Adoption API
// @version 1.0
// @description Catálogo de mascotas en adopción, formulario de solicitudes y administración con Bearer token.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <token> devuelto por /api/auth/login
func main() {
	cfg, err := config.Load("")
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if cfg.JWTSecretGenerated {
		log.Warn("JWT_SECRET not set; using a random per-process secret (tokens die on restart)", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()

		if err := pg.EnsureSchema(ctx, db); err != nil {
			log.Error("schema bootstrap failed", map[string]any{"error": err})
			os.Exit(1)
		}
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DB_DSN not set; using in-memory storage (data is lost on restart)", nil)
	}

	h, err := router.NewRouter(router.Options{
		DB:                 db,
		JWTSecret:          cfg.JWTSecret,
		BcryptCost:         cfg.BcryptCost,
		AllowRegistration:  cfg.AllowRegistration,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
		Logger:             log,
		Metrics:            metrics.New(),
		BaseContext:        ctx,
	})
	if err != nil {
		log.Error("router setup failed", map[string]any{"error": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":               cfg.Addr,
			"allow_registration": cfg.AllowRegistration,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
	}
}
