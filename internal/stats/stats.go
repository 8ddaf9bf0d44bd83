// File: internal/stats/stats.go
// Package stats holds the monotonic counters shared between the pool
// façade and the worker loop.
// License: Apache-2.0

package stats

import "sync/atomic"

// Counters are the five monotonic counters named in the scheduler's
// statistics contract. Every field is a lock-free atomic so hot paths in
// the worker loop never contend on a mutex just to bump a counter.
type Counters struct {
	submitted    atomic.Uint64
	executed     atomic.Uint64
	stolen       atomic.Uint64
	stealAttempt atomic.Uint64
	failedSteal  atomic.Uint64
}

// IncSubmitted records one accepted submission.
func (c *Counters) IncSubmitted() { c.submitted.Add(1) }

// IncExecuted records one task execution, success or panic.
func (c *Counters) IncExecuted() { c.executed.Add(1) }

// IncStolen records one successful steal.
func (c *Counters) IncStolen() { c.stolen.Add(1) }

// IncStealAttempt records one attempted steal, successful or not.
func (c *Counters) IncStealAttempt() { c.stealAttempt.Add(1) }

// IncFailedSteal records one unsuccessful steal.
func (c *Counters) IncFailedSteal() { c.failedSteal.Add(1) }

// Snapshot is a read-only, point-in-time copy of the counters.
type Snapshot struct {
	TasksSubmitted uint64
	TasksExecuted  uint64
	TasksStolen    uint64
	StealAttempts  uint64
	FailedSteals   uint64
}

// Snapshot takes a consistent-enough read of every counter. Individual
// loads are not synchronized with each other, matching the "advisory
// only" nature of the statistics contract.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		TasksSubmitted: c.submitted.Load(),
		TasksExecuted:  c.executed.Load(),
		TasksStolen:    c.stolen.Load(),
		StealAttempts:  c.stealAttempt.Load(),
		FailedSteals:   c.failedSteal.Load(),
	}
}
