package app

import (
	"fmt"
	"log/slog"

	"guardianclima.app/internal/adapters/backend"
	"guardianclima.app/internal/adapters/infrastructure"
	"guardianclima.app/internal/adapters/storage"
	"guardianclima.app/internal/adapters/token"
	"guardianclima.app/internal/config"
	"guardianclima.app/internal/ports"
)

type DependencyContainer struct {
	config  *config.Config
	metrics *infrastructure.PrometheusMetricsCollector
	ports   *ports.ApplicationPorts
}

func NewDependencyContainer(appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: appConfig,
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger() ports.Logger {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	// If file logging is enabled, backend traffic is also written to the log file
	backendCfg := c.config.Backend
	if backendCfg.EnableLogging && backendCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(backendCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			logger = infrastructure.MultiLogger{logger, fileLogger}
			slog.Info("File logging enabled", "path", backendCfg.LogFilePath)
		}
	}

	return logger
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := c.initializeLogger()
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	client, err := backend.NewClient(backend.ClientParams{
		Config: configProvider.GetBackendConfig(),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	var remote ports.Backend = backend.NewMetricsDecorator(client, c.metrics)
	if c.config.Backend.EnableLogging {
		remote = backend.NewLoggingDecorator(remote, logger)
		slog.Info("Backend request logging enabled")
	}

	storageConfig := configProvider.GetStorageConfig()
	provider, err := storage.NewStorageProviderFactory().CreateStorageProvider(&storageConfig)
	if err != nil {
		slog.Error("Failed to create storage provider", "error", err)
		return fmt.Errorf("create storage provider: %w", err)
	}

	tokenStore, err := storage.NewTokenStoreAdapter(provider, storageConfig.TokenKey)
	if err != nil {
		_ = provider.Close()
		return fmt.Errorf("create token store: %w", err)
	}

	slog.Info("Token storage initialized",
		"type", storageConfig.Type,
		"key", storageConfig.TokenKey)

	c.ports = &ports.ApplicationPorts{
		// Remote
		Backend: remote,

		// Session persistence
		TokenStore:   tokenStore,
		TokenDecoder: token.NewJWTDecoder(),
		Storage:      provider,

		// Infrastructure
		ConfigProvider: configProvider,
		Metrics:        c.metrics,
		Logger:         logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsCollector returns the collector backing the /metrics endpoint
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup function for graceful shutdown
func (c *DependencyContainer) Cleanup() error {
	if c.ports != nil && c.ports.Storage != nil {
		return c.ports.Storage.Close()
	}
	return nil
}
