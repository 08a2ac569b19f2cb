package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// FileLoggerAdapter writes one JSON object per line to a file
type FileLoggerAdapter struct {
	filePath string
	mutex    sync.Mutex
	now      func() time.Time
}

// NewFileLoggerAdapter creates a new file logger adapter
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		now:      time.Now,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		entry[field.Key] = field.Value
	}
	// reserved keys win over fields
	entry["timestamp"] = f.now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line, _ = json.Marshal(map[string]interface{}{
			"timestamp": f.now().UTC().Format(time.RFC3339),
			"level":     "ERROR",
			"message":   fmt.Sprintf("failed to marshal log entry: %v", err),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.writeRawLog(line)
}

func (f *FileLoggerAdapter) writeRawLog(data []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
