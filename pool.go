// File: pool.go
// Pool is the scheduler's façade: it constructs workers, dispatches
// Submit, implements SubmitTask/SubmitFunc (submit + Future), Wait, and
// Close. Grounded on Tahsin716-flock.NewPool's validate-then-build shape
// and momentics-hioload-ws/facade.Config/DefaultConfig pairing, with the
// worker/queue/selector machinery delegated to the internal packages
// that carry this module's C2-C6 components.
// License: Apache-2.0
package workpool

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/momentics/workpool/api"
	"github.com/momentics/workpool/internal/quiesce"
	"github.com/momentics/workpool/internal/queue"
	"github.com/momentics/workpool/internal/stats"
	"github.com/momentics/workpool/internal/victim"
	"github.com/momentics/workpool/internal/worker"
)

var _ api.Executor = (*Pool)(nil)
var _ api.GracefulShutdown = (*Pool)(nil)

// Pool is a fixed-size work-stealing worker pool.
type Pool struct {
	cfg      Config
	deques   []*queue.Deque
	global   *queue.GlobalQueue
	selector *victim.Selector
	counters *stats.Counters
	quiesce  *quiesce.Counter
	shutdown atomic.Bool

	wg sync.WaitGroup

	submitMu  sync.Mutex
	submitRng *rand.Rand
}

// New constructs a Pool from cfg, applying defaults to any zero-valued
// field and validating the result. It starts cfg.Threads worker
// goroutines before returning.
func New(cfg Config) (*Pool, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		cfg:       cfg,
		global:    queue.NewGlobalQueue(),
		selector:  victim.New(cfg.StealPolicy.internal(), cfg.Threads),
		counters:  &stats.Counters{},
		quiesce:   quiesce.New(),
		submitRng: victim.NewRand(),
	}

	p.deques = make([]*queue.Deque, cfg.Threads)
	for i := range p.deques {
		p.deques[i] = queue.NewDeque(cfg.MaxQueueTasks)
	}

	var logger worker.Logger
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	for i := 0; i < cfg.Threads; i++ {
		w := worker.New(
			i,
			p.deques[i],
			p.deques,
			p.global,
			p.selector,
			victim.NewRand(),
			p.counters,
			p.quiesce,
			&p.shutdown,
			cfg.StealAttempts,
			cfg.IdleSleep,
			logger,
		)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.Run()
		}()
	}

	return p, nil
}

// Submit hands task to the pool for fire-and-forget execution.
//
// Submission target selection always uses the Random policy,
// independent of the configured StealPolicy, which governs stealing
// only. If the chosen worker's local deque is at capacity, the task
// transparently falls through to the unbounded global overflow queue —
// this is never surfaced as an error.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if p.shutdown.Load() {
		return ErrPoolClosed
	}

	p.quiesce.Add()
	// Close may have set the flag between the check above and Add, after
	// which workers can exit on a zero count; roll back and reject.
	if p.shutdown.Load() {
		p.quiesce.Done()
		return ErrPoolClosed
	}

	idx := p.randomWorker()
	if !p.deques[idx].TryPush(task) {
		p.global.Push(task)
	}
	p.counters.IncSubmitted()
	return nil
}

// randomWorker returns a uniformly-random worker index in [0, Threads).
// Guarded by a mutex since Submit may be called concurrently from many
// goroutines and math/rand/v2's *rand.Rand is not itself safe for
// concurrent use.
func (p *Pool) randomWorker() int {
	p.submitMu.Lock()
	defer p.submitMu.Unlock()
	return p.submitRng.IntN(p.cfg.Threads)
}

// Wait blocks until every task accepted so far has finished executing.
// It is re-callable; calling it again with no submissions in between is
// a cheap no-op. Calling Wait from inside a task running on this same
// pool deadlocks and is not detected.
func (p *Pool) Wait() {
	p.quiesce.Wait()
}

// Stats returns a read-only snapshot of the pool's monotonic counters.
func (p *Pool) Stats() Stats {
	return p.counters.Snapshot()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.cfg.Threads
}

// Close initiates shutdown. It is idempotent: calling it more than once
// has no additional effect. It does not drain remaining tasks itself;
// each worker's own exit check leaves the loop only once the quiescence
// counter reaches zero, so Close implicitly waits for every accepted
// task to finish before it joins all workers and returns.
func (p *Pool) Close() error {
	p.shutdown.Store(true)
	p.wg.Wait()
	return nil
}

// Shutdown is an explicit alias for Close, satisfying
// api.GracefulShutdown for callers that prefer that entry point.
func (p *Pool) Shutdown() error {
	return p.Close()
}
