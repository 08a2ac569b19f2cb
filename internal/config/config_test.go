package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"guardianclima.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, 20.0, config.Server.RateLimit)
		assert.Equal(t, 40, config.Server.RateBurst)
		assert.Equal(t, "info", config.Log.Level)
		assert.Equal(t, "http://127.0.0.1:5000", config.Backend.BaseURL)
		assert.Equal(t, 30, config.Backend.TimeoutSeconds)
		assert.True(t, config.Backend.EnableLogging)
		assert.Equal(t, StorageTypeFile, config.Storage.Type)
		assert.Equal(t, "token", config.Storage.TokenKey)
		assert.Equal(t, "sqlite", config.Storage.Database.Driver)
		assert.Equal(t, 3, config.Gating.FreeOutfitUses)
		assert.Equal(t, 1, config.Gating.FreeTravelUses)
		assert.Equal(t, 5, config.Gating.FreeHistoryLimit)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("BACKEND_BASE_URL", "https://api.guardianclima.example")
		t.Setenv("STORAGE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("GATING_FREE_OUTFIT_USES", "5")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "https://api.guardianclima.example", config.Backend.BaseURL)
		assert.Equal(t, StorageTypeRedis, config.Storage.Type)
		assert.Equal(t, "redis:6379", config.Storage.Redis.Addr)
		assert.Equal(t, 2, config.Storage.Redis.DB)
		assert.Equal(t, 5, config.Gating.FreeOutfitUses)
	})

	t.Run("InvalidStorageType", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("STORAGE_TYPE", "localstorage")

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "STORAGE_TYPE")
	})

	t.Run("NegativeServerRateLimit", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_RATE_LIMIT", "-1")

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "SERVER_RATE_LIMIT")
	})

	t.Run("InvalidBackendURL", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("BACKEND_BASE_URL", "127.0.0.1:5000")

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "BACKEND_BASE_URL must start with http:// or https://")
	})
}

func TestStorageTypeFromString(t *testing.T) {
	tests := map[string]StorageType{
		"memory":   StorageTypeMemory,
		"FILE":     StorageTypeFile,
		" redis ":  StorageTypeRedis,
		"database": StorageTypeDatabase,
		"cookie":   StorageTypeUnknown,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, StorageTypeFromString(input), input)
	}
}

func TestDatabaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  DatabaseConfig
		wantErr string
	}{
		{
			name:   "SQLite",
			config: DatabaseConfig{Driver: "sqlite", Path: "session.db"},
		},
		{
			name:    "SQLiteWithoutPath",
			config:  DatabaseConfig{Driver: "sqlite"},
			wantErr: "DB_PATH",
		},
		{
			name:    "UnknownDriver",
			config:  DatabaseConfig{Driver: "mysql"},
			wantErr: "DB_DRIVER",
		},
		{
			name: "PostgresBadSSLMode",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: 5432, User: "u", Name: "n", SSLMode: "prefer",
			},
			wantErr: "DB_SSL_MODE",
		},
		{
			name: "Postgres",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: 5432, User: "u", Name: "n", SSLMode: "disable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "data/session.db"}
	assert.Equal(t, "data/session.db", sqlite.GetDSN())

	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", pg.GetDSN())
}
