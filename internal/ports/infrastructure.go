package ports

import (
	"context"
	"time"
)

// BackendConfig represents the remote API client configuration
type BackendConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

// GatingConfig represents the free-plan allowances
type GatingConfig struct {
	FreeOutfitUses   int
	FreeTravelUses   int
	FreeHistoryLimit int
}

// StorageConfig represents token storage configuration
type StorageConfig struct {
	Type     string
	TokenKey string
	FilePath string
	Redis    RedisConfig
	Database DatabaseConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port      int
	RateLimit float64
	RateBurst int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetBackendConfig() BackendConfig
	GetGatingConfig() GatingConfig
	GetStorageConfig() StorageConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordBackendCall(ctx context.Context, endpoint string, duration time.Duration, err error)
	RecordFlowOutcome(ctx context.Context, flow string, outcome string)
	RecordForcedLogout(ctx context.Context, reason string)
}
