package infrastructure

import (
	"context"
	"time"

	"guardianclima.app/internal/ports"
)

const healthProbeKey = "health:probe"

// BackendHealthChecker verifies that the GuardiánClima API answers
type BackendHealthChecker struct {
	backend ports.Backend
	baseURL string
}

func NewBackendHealthChecker(backend ports.Backend, baseURL string) *BackendHealthChecker {
	return &BackendHealthChecker{backend: backend, baseURL: baseURL}
}

func (b *BackendHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "backend",
		Details: map[string]interface{}{
			"baseURL": b.baseURL,
		},
	}

	if b.backend == nil {
		status.Status = "unhealthy"
		status.Error = "backend client is not available"
		return status
	}

	start := time.Now()
	err := b.backend.Ping(ctx)
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = "healthy"
	status.Details["connected"] = true
	return status
}

type pinger interface {
	Ping(ctx context.Context) error
}

// StorageHealthChecker verifies the token storage backend. Providers with a
// Ping method are pinged; the others are probed with a key lookup.
type StorageHealthChecker struct {
	storage     ports.StorageProvider
	storageType string
}

func NewStorageHealthChecker(storage ports.StorageProvider, storageType string) *StorageHealthChecker {
	return &StorageHealthChecker{storage: storage, storageType: storageType}
}

func (s *StorageHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "storage",
		Details: map[string]interface{}{
			"type": s.storageType,
		},
	}

	if s.storage == nil {
		status.Status = "unhealthy"
		status.Error = "storage provider is not available"
		return status
	}

	var err error
	if p, ok := s.storage.(pinger); ok {
		err = p.Ping(ctx)
	} else {
		_, err = s.storage.Exists(ctx, healthProbeKey)
	}
	if err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	status.Status = "healthy"
	return status
}
