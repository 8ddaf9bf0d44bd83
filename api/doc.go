// Package api defines the small set of cross-package contracts the
// scheduler's public types implement: Executor (fire-and-forget
// submission), Result/Cancelable (the shape a future's delivered value
// takes), GracefulShutdown (orderly teardown), and the structured Error
// type used for configuration-validation failures.
// License: Apache-2.0
package api
