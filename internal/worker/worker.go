// File: internal/worker/worker.go
// Package worker implements the scheduler's worker loop (C5): the state
// machine that arbitrates between local pop, remote steal, global-queue
// drain, and idling, while preserving the quiescence counter and
// statistics.
//
// The five states (Running-local, Stealing, Draining-global, Idling,
// Exiting) and their ordering are taken directly from the scheduler
// specification's worker-loop section, which itself settles the
// "global queue before or after peer stealing" question the original
// C++ source left open (_examples/original_source/src/worker.cpp has no
// global-queue notion at all) by trying peers first so hot tasks stay
// close to their producer.
// License: Apache-2.0
package worker

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/momentics/workpool/internal/quiesce"
	"github.com/momentics/workpool/internal/queue"
	"github.com/momentics/workpool/internal/stats"
	"github.com/momentics/workpool/internal/victim"
)

// Logger receives one formatted line per recovered task panic. A nil
// Logger silences the optional "task failed: <message>" diagnostic.
type Logger func(format string, args ...any)

// Worker is one long-lived execution loop bound to its own local deque.
type Worker struct {
	id            int
	local         *queue.Deque
	peers         []*queue.Deque
	global        *queue.GlobalQueue
	selector      *victim.Selector
	rng           *rand.Rand
	counters      *stats.Counters
	quiesce       *quiesce.Counter
	shutdown      *atomic.Bool
	stealAttempts int
	idleSleep     time.Duration
	logger        Logger
}

// New constructs a worker. peers must include this worker's own deque at
// index id, since both Random and RoundRobin victim selection address
// peers by pool-wide index (self-selection is permitted).
func New(
	id int,
	local *queue.Deque,
	peers []*queue.Deque,
	global *queue.GlobalQueue,
	selector *victim.Selector,
	rng *rand.Rand,
	counters *stats.Counters,
	q *quiesce.Counter,
	shutdown *atomic.Bool,
	stealAttempts int,
	idleSleep time.Duration,
	logger Logger,
) *Worker {
	return &Worker{
		id:            id,
		local:         local,
		peers:         peers,
		global:        global,
		selector:      selector,
		rng:           rng,
		counters:      counters,
		quiesce:       q,
		shutdown:      shutdown,
		stealAttempts: stealAttempts,
		idleSleep:     idleSleep,
		logger:        logger,
	}
}

// Run executes the worker loop until the pool is shut down and
// quiescent. It returns only when this worker is ready to join.
func (w *Worker) Run() {
	for {
		if task, ok := w.local.TryPop(); ok {
			w.exec(task)
			continue
		}

		stole := false
		for attempt := 1; attempt <= w.stealAttempts; attempt++ {
			victimIdx := w.selector.Victim(w.id, attempt, w.rng)
			w.counters.IncStealAttempt()
			if task, ok := w.peers[victimIdx].TrySteal(); ok {
				w.counters.IncStolen()
				w.exec(task)
				stole = true
				break
			}
			w.counters.IncFailedSteal()
		}
		if stole {
			continue
		}

		if task, ok := w.global.TrySteal(); ok {
			w.exec(task)
			continue
		}

		if w.shutdown.Load() && w.quiesce.Zero() {
			return
		}

		time.Sleep(w.idleSleep)
	}
}

// exec runs task under a scoped decrement guard: the quiescence counter
// is decremented exactly once on any exit path, normal return or
// recovered panic, and tasks_executed is incremented regardless of
// outcome. This is the Go expression of the source's runtime::TaskGuard
// destructor.
func (w *Worker) exec(task queue.Task) {
	defer func() {
		r := recover()
		w.counters.IncExecuted()
		if r != nil && w.logger != nil {
			w.logger("task failed: %v", r)
		}
		w.quiesce.Done()
	}()
	task()
}
