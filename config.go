// File: config.go
// Pool configuration: a plain, validated record rather than
// keyword-style options, per the scheduler's own design notes. Grounded
// on facade.Config/DefaultConfig from momentics-hioload-ws and
// Tahsin716-flock's DefaultConfig()/Validate() split.
// License: Apache-2.0
package workpool

import (
	"runtime"
	"time"

	"github.com/momentics/workpool/internal/victim"
)

// StealPolicy selects how a worker chooses its next steal victim.
type StealPolicy int

const (
	// Random tries a uniformly-random victim on every attempt.
	Random StealPolicy = iota
	// RoundRobin tries victims in the deterministic order
	// (self+1, self+2, ...) mod N.
	RoundRobin
)

func (p StealPolicy) internal() victim.Policy {
	if p == RoundRobin {
		return victim.RoundRobin
	}
	return victim.Random
}

// DefaultMaxQueueTasks is the default per-worker deque capacity.
const DefaultMaxQueueTasks = 1 << 16

// DefaultStealAttempts is the default number of victims tried per
// empty-local pass.
const DefaultStealAttempts = 4

// DefaultIdleSleep is the default sleep between unsuccessful passes.
const DefaultIdleSleep = time.Millisecond

// Config holds the pool's immutable-after-construction configuration.
type Config struct {
	// Threads is the number of worker goroutines. Must be >= 1 after
	// defaulting; 0 means "use runtime.NumCPU(), or 1 if that reports 0".
	Threads int

	// StealAttempts is the number of victims tried per empty-local pass.
	// Must be >= 1 after defaulting; 0 means DefaultStealAttempts.
	StealAttempts int

	// IdleSleep is the sleep duration between unsuccessful passes.
	// Zero means DefaultIdleSleep.
	IdleSleep time.Duration

	// MaxQueueTasks is the per-worker deque capacity. Zero means
	// DefaultMaxQueueTasks.
	MaxQueueTasks int

	// StealPolicy selects Random or RoundRobin victim selection.
	StealPolicy StealPolicy

	// Logger receives one formatted "task failed: <message>" line per
	// recovered task panic. Nil silences it entirely; stderr reporting
	// is permitted, not required.
	Logger func(format string, args ...any)
}

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() Config {
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}
	return Config{
		Threads:       threads,
		StealAttempts: DefaultStealAttempts,
		IdleSleep:     DefaultIdleSleep,
		MaxQueueTasks: DefaultMaxQueueTasks,
		StealPolicy:   Random,
	}
}

// withDefaults fills in zero-valued fields with their defaults, leaving
// explicitly-set fields untouched.
func (c Config) withDefaults() Config {
	if c.Threads == 0 {
		c.Threads = DefaultConfig().Threads
	}
	if c.StealAttempts == 0 {
		c.StealAttempts = DefaultStealAttempts
	}
	if c.IdleSleep == 0 {
		c.IdleSleep = DefaultIdleSleep
	}
	if c.MaxQueueTasks == 0 {
		c.MaxQueueTasks = DefaultMaxQueueTasks
	}
	return c
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return errInvalidConfig("threads must be >= 1")
	}
	if c.StealAttempts < 1 {
		return errInvalidConfig("steal_attempts must be >= 1")
	}
	if c.IdleSleep < 0 {
		return errInvalidConfig("idle_sleep must be >= 0")
	}
	if c.MaxQueueTasks < 1 {
		return errInvalidConfig("max_queue_tasks must be >= 1")
	}
	return nil
}
