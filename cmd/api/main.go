package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/database"
	"github.com/recipehub/backend/internal/logger"
	"github.com/recipehub/backend/internal/server"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.IsDevelopment())

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		// The denylist is optional; auth stays purely token-based without it.
		log.Warn().Err(err).Msg("redis unavailable, token denylist disabled")
		rdb = nil
	}

	srv := server.New(cfg, db, rdb, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("server stopped")
}
