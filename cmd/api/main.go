// @title Personal Calendar API
// @version 1.0
// @description Calendario personal: eventos por dueño, vistas, drag & drop y suscripciones en vivo.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-calendar/internal/adapters/auth/idp"
	"personal-calendar/internal/adapters/auth/jwtauth"
	pg "personal-calendar/internal/adapters/storage/postgres"
	"personal-calendar/internal/platform/config"
	"personal-calendar/internal/platform/logger"
	"personal-calendar/internal/ports/auth"
	"personal-calendar/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logger.Level),
		Format: logger.ParseFormat(cfg.Logger.Format),
		App:    cfg.App.Name,
	})
	if z, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := buildVerifier(cfg, log)
	if err != nil {
		return err
	}

	var db *sql.DB
	listen := false
	if cfg.Database.DSN != "" {
		db, err = pg.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		migrateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = pg.Migrate(migrateCtx, db)
		cancel()
		if err != nil {
			return err
		}
		listen = true
	}

	app := router.New(router.Options{
		AuthVerifier:    verifier,
		DB:              db,
		DBNotifications: listen,
		Logger:          log,
		Location:        cfg.Calendar.Location,
		RateLimitPerMin: cfg.RateLimit.MutationsPerMin,
	})

	if listen {
		pool, err := pg.OpenPool(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		l := pg.NewListener(pool, app.Hub.Notify, log.With(map[string]any{"component": "pg-listener"}))
		go func() {
			if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("postgres listener stopped", map[string]any{"error": err.Error()})
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"store":    storeName(db),
			"auth":     authMode(cfg),
			"timezone": cfg.Calendar.Location.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildVerifier: IdP si está configurado, si no JWT, si no modo dev (nil).
func buildVerifier(cfg *config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	switch {
	case cfg.Auth.IdPBaseURL != "":
		return idp.NewVerifier(idp.Config{
			BaseURL: cfg.Auth.IdPBaseURL,
			APIKey:  cfg.Auth.IdPAPIKey,
			Timeout: cfg.Auth.IdPTimeout,
		})
	case cfg.Auth.JWTSecret != "":
		return jwtauth.NewVerifier(cfg.Auth.JWTSecret)
	default:
		log.Warn("no auth verifier configured, accepting X-Debug-User-ID", nil)
		return nil, nil
	}
}

func authMode(cfg *config.Config) string {
	switch {
	case cfg.Auth.IdPBaseURL != "":
		return "idp"
	case cfg.Auth.JWTSecret != "":
		return "jwt"
	default:
		return "dev"
	}
}

func storeName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
