package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/adapters/api"
	"guardianclima.app/internal/adapters/infrastructure"
	"guardianclima.app/internal/config"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Core
	session *session.Store

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
}

// expiringStorage is implemented by storage backends that cannot expire keys on their own
type expiringStorage interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	configureLogging(cfg.Log)

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     depContainer,
		ports:    depContainer.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeSession(); err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

// configureLogging installs the process-wide JSON logger at the configured level
func configureLogging(cfg config.LogConfig) {
	l := logger.NewWithWriter(os.Stderr, logger.ParseLevel(cfg.Level))
	slog.SetDefault(l.Logger)
}

func (a *Application) initializeSession() error {
	slog.Info("Initializing session store...")

	store, err := session.NewStore(session.Dependencies{
		Backend: a.ports.Backend,
		Tokens:  a.ports.TokenStore,
		Decoder: a.ports.TokenDecoder,
		Config:  a.ports.ConfigProvider,
		Metrics: a.ports.Metrics,
		Logger:  a.ports.Logger,
		Clock:   a.ports.Clock,
	})
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	a.session = store

	slog.Info("Session store initialized", "session_id", store.Snapshot().SessionID)
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register plan validator", "error", err)
	}

	backendConfig := a.ports.ConfigProvider.GetBackendConfig()
	storageConfig := a.ports.ConfigProvider.GetStorageConfig()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		BackendChecker: infrastructure.NewBackendHealthChecker(a.ports.Backend, backendConfig.BaseURL),
		StorageChecker: infrastructure.NewStorageHealthChecker(a.ports.Storage, storageConfig.Type),
		ConfigProvider: a.ports.ConfigProvider,
	})

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:      serverConfig.Port,
			RateLimit: serverConfig.RateLimit,
			RateBurst: serverConfig.RateBurst,
		},
		Session:             a.session,
		SystemHealthChecker: systemHealthChecker,
		MetricsHandler:      a.deps.MetricsCollector().Handler(),
		Logger:              a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * backendConfig.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start restores a persisted session, if any, and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.session.RestoreSession(ctx); err != nil {
		slog.Warn("Could not restore the previous session", "error", err)
	}
	slog.Info("Session ready", "view", a.session.View())

	if storage, ok := a.ports.Storage.(expiringStorage); ok {
		interval := time.Duration(a.config.Storage.SweepIntervalMinutes) * time.Minute
		go a.startStorageSweeper(ctx, storage, interval)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startStorageSweeper periodically removes expired keys from storage
func (a *Application) startStorageSweeper(ctx context.Context, storage expiringStorage, interval time.Duration) {
	if interval <= 0 {
		return
	}
	slog.Info("Starting storage sweeper...", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Storage sweeper stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Storage sweeper stopped")
			return
		case <-ticker.C:
			removed, err := storage.DeleteExpired(ctx)
			if err != nil {
				slog.Error("Error sweeping expired storage keys", "error", err)
				continue
			}
			if removed > 0 {
				slog.Debug("Expired storage keys removed", "count", removed)
			}
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	// Signal sweeper to stop
	close(a.stopChan)

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing token storage", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetSession returns the session store for testing
func (a *Application) GetSession() *session.Store {
	return a.session
}
