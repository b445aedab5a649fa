package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/RatingTable_Go/internal/config"
	"github.com/osse101/RatingTable_Go/internal/mechanics"
	"github.com/osse101/RatingTable_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)
	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", warning)
	}

	slog.Info("Mechanics table loaded",
		"constants", len(mechanics.All()),
		"max_character_level", mechanics.MaxCharacterLevel,
		"boss_level", mechanics.BossLevel)

	srv := server.NewServer(cfg.Port, cfg.Version)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case sig := <-sc:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
