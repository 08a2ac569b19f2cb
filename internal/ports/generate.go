// Package ports defines the interfaces between the session core and the outside
// world: the remote backend, token persistence, configuration, logging and metrics.
// These interfaces are implemented by adapters and mocked for testing.
//
//go:generate mockery
package ports
