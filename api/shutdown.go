// File: api/shutdown.go
// Package api defines the unified graceful-shutdown contract.
// License: Apache-2.0

package api

// GracefulShutdown unifies orderly teardown across components. The
// scheduler's Pool implements it as an alternative entry point with the
// same effect as its Close method.
type GracefulShutdown interface {
	// Shutdown performs orderly teardown and releases resources,
	// returning an error on failure.
	Shutdown() error
}
