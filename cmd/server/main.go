package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/api"
	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/service"
	"github.com/dreamladder/backoffice/internal/infrastructure/config"
	"github.com/dreamladder/backoffice/internal/infrastructure/db/postgres"
	"github.com/dreamladder/backoffice/internal/infrastructure/db/redis"
	"github.com/dreamladder/backoffice/internal/infrastructure/queue"
	"github.com/dreamladder/backoffice/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(cfg.Database.DSN, cfg.Env == "development")
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	if err := bootstrapAdmin(ctx, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	dispatcher := queue.NewDispatcher(0, queue.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterConfig{
		DB:        db,
		Redis:     rdb,
		Queue:     dispatcher,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  time.Duration(cfg.TokenTTLHours) * time.Hour,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// bootstrapAdmin seeds the initial admin account when it does not exist yet.
// Skipped entirely when ADMIN_PASSWORD is unset.
func bootstrapAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	repo := postgres.NewAuthRepository(db)
	_, err := repo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return repo.Create(ctx, &domain.AdminUser{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
	})
}
