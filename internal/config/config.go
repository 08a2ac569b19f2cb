package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"guardianclima.app/pkg/errors"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxTimeoutSeconds = 300
)

// Config represents the session host configuration
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Log     LogConfig     `split_words:"true"`
	Backend BackendConfig `split_words:"true"`
	Storage StorageConfig `split_words:"true"`
	Gating  GatingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port      int     `envconfig:"SERVER_PORT" default:"8080"`
	RateLimit float64 `envconfig:"SERVER_RATE_LIMIT" default:"20"`
	RateBurst int     `envconfig:"SERVER_RATE_BURST" default:"40"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// BackendConfig describes the remote GuardiánClima API
type BackendConfig struct {
	BaseURL        string  `envconfig:"BACKEND_BASE_URL" default:"http://127.0.0.1:5000"`
	TimeoutSeconds int     `envconfig:"BACKEND_TIMEOUT_SECONDS" default:"30"`
	RateLimit      float64 `envconfig:"BACKEND_RATE_LIMIT" default:"10"`
	RateBurst      int     `envconfig:"BACKEND_RATE_BURST" default:"5"`
	EnableLogging  bool    `envconfig:"BACKEND_ENABLE_LOGGING" default:"true"`
	LogFilePath    string  `envconfig:"BACKEND_LOG_FILE_PATH" default:""`
}

// StorageType represents where the bearer token is persisted
type StorageType int

const (
	StorageTypeUnknown StorageType = iota
	StorageTypeMemory
	StorageTypeFile
	StorageTypeRedis
	StorageTypeDatabase
)

// String returns the string representation of storage type
func (s StorageType) String() string {
	switch s {
	case StorageTypeMemory:
		return "memory"
	case StorageTypeFile:
		return "file"
	case StorageTypeRedis:
		return "redis"
	case StorageTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the storage type is valid
func (s StorageType) IsValid() bool {
	return s >= StorageTypeMemory && s <= StorageTypeDatabase
}

// StorageTypeFromString converts string to StorageType enum
func StorageTypeFromString(s string) StorageType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StorageTypeMemory
	case "file":
		return StorageTypeFile
	case "redis":
		return StorageTypeRedis
	case "database":
		return StorageTypeDatabase
	default:
		return StorageTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StorageType) UnmarshalText(text []byte) error {
	*s = StorageTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StorageType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StorageConfig struct {
	Type                 StorageType    `envconfig:"STORAGE_TYPE" default:"file"`
	TokenKey             string         `envconfig:"STORAGE_TOKEN_KEY" default:"token"`
	FilePath             string         `envconfig:"STORAGE_FILE_PATH" default:"data/session.json"`
	SweepIntervalMinutes int            `envconfig:"STORAGE_SWEEP_INTERVAL_MINUTES" default:"10"`
	Redis                RedisConfig    `split_words:"true"`
	Database             DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path     string `envconfig:"DB_PATH" default:"data/session.db"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"guardianclima"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// GatingConfig holds the free-plan allowances mirrored from the backend
type GatingConfig struct {
	FreeOutfitUses   int `envconfig:"GATING_FREE_OUTFIT_USES" default:"3"`
	FreeTravelUses   int `envconfig:"GATING_FREE_TRAVEL_USES" default:"1"`
	FreeHistoryLimit int `envconfig:"GATING_FREE_HISTORY_LIMIT" default:"5"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Gating.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.RateLimit < 0 {
		return errors.NewConfigurationError("SERVER_RATE_LIMIT cannot be negative", nil)
	}
	if s.RateLimit > 0 && s.RateBurst < 1 {
		return errors.NewConfigurationError("SERVER_RATE_BURST must be at least 1", nil)
	}
	return nil
}

func (b *BackendConfig) Validate() error {
	if b.BaseURL == "" {
		return errors.NewConfigurationError("BACKEND_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(b.BaseURL, "http://") && !strings.HasPrefix(b.BaseURL, "https://") {
		return errors.NewConfigurationError("BACKEND_BASE_URL must start with http:// or https://", nil)
	}
	if b.TimeoutSeconds < 1 || b.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("BACKEND_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	if b.RateLimit <= 0 {
		return errors.NewConfigurationError("BACKEND_RATE_LIMIT must be positive", nil)
	}
	if b.RateBurst < 1 {
		return errors.NewConfigurationError("BACKEND_RATE_BURST must be at least 1", nil)
	}
	return nil
}

func (s *StorageConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORAGE_TYPE must be one of: memory, file, redis, database", nil)
	}
	if strings.TrimSpace(s.TokenKey) == "" {
		return errors.NewConfigurationError("STORAGE_TOKEN_KEY cannot be empty", nil)
	}

	switch s.Type {
	case StorageTypeFile:
		if s.FilePath == "" {
			return errors.NewConfigurationError("STORAGE_FILE_PATH cannot be empty when using file storage", nil)
		}
	case StorageTypeRedis:
		return s.Redis.Validate()
	case StorageTypeDatabase:
		if s.SweepIntervalMinutes < 1 {
			return errors.NewConfigurationError("STORAGE_SWEEP_INTERVAL_MINUTES must be at least 1", nil)
		}
		return s.Database.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis storage", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (g *GatingConfig) Validate() error {
	if g.FreeOutfitUses < 0 {
		return errors.NewConfigurationError("GATING_FREE_OUTFIT_USES cannot be negative", nil)
	}
	if g.FreeTravelUses < 0 {
		return errors.NewConfigurationError("GATING_FREE_TRAVEL_USES cannot be negative", nil)
	}
	if g.FreeHistoryLimit < 1 {
		return errors.NewConfigurationError("GATING_FREE_HISTORY_LIMIT must be at least 1", nil)
	}
	return nil
}
