package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"guardianclima.app/internal/app"
	"guardianclima.app/internal/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	snap := application.GetSession().Snapshot()
	slog.Info("Session host configured",
		"session_id", snap.SessionID,
		"port", cfg.Server.Port,
		"backend", cfg.Backend.BaseURL,
		"token_storage", cfg.Storage.Type.String(),
		"rate_limit", cfg.Server.RateLimit)
	if cfg.Storage.Type == config.StorageTypeMemory {
		slog.Warn("Token storage is in memory, the session will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Session host stopped", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("Session host stopped", "view", application.GetSession().View())
}
