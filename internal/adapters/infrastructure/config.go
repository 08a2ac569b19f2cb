package infrastructure

import (
	"time"

	"guardianclima.app/internal/config"
	"guardianclima.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetBackendConfig() ports.BackendConfig {
	return ports.BackendConfig{
		BaseURL:   c.config.Backend.BaseURL,
		Timeout:   time.Duration(c.config.Backend.TimeoutSeconds) * time.Second,
		RateLimit: c.config.Backend.RateLimit,
		RateBurst: c.config.Backend.RateBurst,
	}
}

func (c *ConfigProviderAdapter) GetGatingConfig() ports.GatingConfig {
	return ports.GatingConfig{
		FreeOutfitUses:   c.config.Gating.FreeOutfitUses,
		FreeTravelUses:   c.config.Gating.FreeTravelUses,
		FreeHistoryLimit: c.config.Gating.FreeHistoryLimit,
	}
}

func (c *ConfigProviderAdapter) GetStorageConfig() ports.StorageConfig {
	storage := c.config.Storage
	return ports.StorageConfig{
		Type:     storage.Type.String(),
		TokenKey: storage.TokenKey,
		FilePath: storage.FilePath,
		Redis: ports.RedisConfig{
			Addr:         storage.Redis.Addr,
			Password:     storage.Redis.Password,
			DB:           storage.Redis.DB,
			DialTimeout:  storage.Redis.DialTimeout,
			ReadTimeout:  storage.Redis.ReadTimeout,
			WriteTimeout: storage.Redis.WriteTimeout,
		},
		Database: ports.DatabaseConfig{
			Driver: storage.Database.Driver,
			DSN:    storage.Database.GetDSN(),
		},
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:      c.config.Server.Port,
		RateLimit: c.config.Server.RateLimit,
		RateBurst: c.config.Server.RateBurst,
	}
}
