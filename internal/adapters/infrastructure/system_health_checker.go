package infrastructure

import (
	"context"

	"guardianclima.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	backendChecker ports.BackendHealthChecker
	storageChecker ports.StorageHealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	BackendChecker ports.BackendHealthChecker
	StorageChecker ports.StorageHealthChecker
	ConfigProvider ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		backendChecker: config.BackendChecker,
		storageChecker: config.StorageChecker,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.backendChecker != nil {
		results["backend"] = s.backendChecker.Check(ctx)
	}

	if s.storageChecker != nil {
		results["storage"] = s.storageChecker.Check(ctx)
	}

	if s.configProvider != nil {
		gating := s.configProvider.GetGatingConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"storageType":      s.configProvider.GetStorageConfig().Type,
				"freeOutfitUses":   gating.FreeOutfitUses,
				"freeTravelUses":   gating.FreeTravelUses,
				"freeHistoryLimit": gating.FreeHistoryLimit,
			},
		}
	}

	return results
}
