package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")

		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("CreatesNestedDirectory", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "nested", "deep", "backend.log")

		logger, err := NewFileLoggerAdapter(logPath)

		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.DirExists(t, filepath.Dir(logPath))
	})
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC) }

	logger.Debug("debug message", ports.F("flow", "weather"))
	logger.Info("info message", ports.F("endpoint", "history"))
	logger.Warn("warn message", ports.F("city", "Lima"), ports.F("error", "timeout"))
	logger.Error("error message", ports.F("duration_ms", 5000))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 4)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "weather", entries[0]["flow"])
	assert.Equal(t, "INFO", entries[1]["level"])
	assert.Equal(t, "WARN", entries[2]["level"])
	assert.Equal(t, "timeout", entries[2]["error"])
	assert.Equal(t, "ERROR", entries[3]["level"])
	assert.Equal(t, float64(5000), entries[3]["duration_ms"])
	assert.Equal(t, "2025-06-10T12:00:00Z", entries[3]["timestamp"])
	assert.Equal(t, "error message", entries[3]["message"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "real message", entries[0]["message"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	logger.Info("bad field", ports.F("channel", make(chan int)))

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["message"], "failed to marshal log entry")
}

func TestFileLoggerAdapter_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")

	first, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	first.Info("first")

	second, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	second.Info("second")

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "second", entries[1]["message"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	const goroutines = 10
	const perGoroutine = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.Info(fmt.Sprintf("entry %d-%d", id, j), ports.F("goroutine", id))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, readLogLines(t, logPath), goroutines*perGoroutine)
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(filepath.Join(b.TempDir(), "bench.log"))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("Backend request completed", ports.F("endpoint", "weather"), ports.F("duration_ms", 42))
	}
}
