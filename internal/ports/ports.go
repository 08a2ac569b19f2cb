package ports

import "time"

// Clock supplies the current time. Token expiry is always checked against it.
type Clock func() time.Time

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Remote
	Backend Backend

	// Session persistence
	TokenStore   TokenStore
	TokenDecoder TokenDecoder
	Storage      StorageProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Metrics        MetricsCollector
	Logger         Logger
	Clock          Clock
}
