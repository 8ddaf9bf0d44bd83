package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/workpool/internal/quiesce"
	"github.com/momentics/workpool/internal/queue"
	"github.com/momentics/workpool/internal/stats"
	"github.com/momentics/workpool/internal/victim"
)

func newTestWorker(id int, deques []*queue.Deque, global *queue.GlobalQueue, sel *victim.Selector, q *quiesce.Counter, counters *stats.Counters, shutdown *atomic.Bool) *Worker {
	return New(id, deques[id], deques, global, sel, victim.NewRand(), counters, q, shutdown, 4, time.Millisecond, nil)
}

func TestWorker_RunsLocalTasks(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(16)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.Random, 1)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	var ran int64
	const n = 10
	for i := 0; i < n; i++ {
		q.Add()
		deques[0].TryPush(func() { atomic.AddInt64(&ran, 1) })
	}

	w := newTestWorker(0, deques, global, sel, q, counters, &shutdown)
	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	q.Wait()
	shutdown.Store(true)
	<-done

	if ran != n {
		t.Fatalf("ran = %d, want %d", ran, n)
	}
	if counters.Snapshot().TasksExecuted != n {
		t.Fatalf("TasksExecuted = %d, want %d", counters.Snapshot().TasksExecuted, n)
	}
}

func TestWorker_StealsFromPeer(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(32), queue.NewDeque(32)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.RoundRobin, 2)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	var ran int64
	const n = 20
	for i := 0; i < n; i++ {
		q.Add()
		deques[1].TryPush(func() { atomic.AddInt64(&ran, 1) })
	}

	// Worker 0 has an empty local deque; it must steal everything from
	// worker 1's deque since nothing ever runs worker 1's own loop.
	w0 := newTestWorker(0, deques, global, sel, q, counters, &shutdown)
	done := make(chan struct{})
	go func() {
		w0.Run()
		close(done)
	}()

	q.Wait()
	shutdown.Store(true)
	<-done

	if ran != n {
		t.Fatalf("ran = %d, want %d", ran, n)
	}
	if counters.Snapshot().TasksStolen != n {
		t.Fatalf("TasksStolen = %d, want %d", counters.Snapshot().TasksStolen, n)
	}
}

func TestWorker_DrainsGlobalQueue(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(16)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.Random, 1)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	var ran int64
	const n = 15
	for i := 0; i < n; i++ {
		q.Add()
		global.Push(func() { atomic.AddInt64(&ran, 1) })
	}

	w := newTestWorker(0, deques, global, sel, q, counters, &shutdown)
	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	q.Wait()
	shutdown.Store(true)
	<-done

	if ran != n {
		t.Fatalf("ran = %d, want %d", ran, n)
	}
}

func TestWorker_ExitsOnShutdownWhenQuiescent(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(16)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.Random, 1)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	w := newTestWorker(0, deques, global, sel, q, counters, &shutdown)
	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	shutdown.Store(true)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after shutdown with an empty, quiescent pool")
	}
}

func TestWorker_RecoversPanicAndKeepsRunning(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(16)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.Random, 1)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	var logged []string
	var mu sync.Mutex

	w := New(0, deques[0], deques, global, sel, victim.NewRand(), counters, q, &shutdown, 4, time.Millisecond, func(format string, args ...any) {
		mu.Lock()
		logged = append(logged, format)
		mu.Unlock()
	})

	// The local deque pops LIFO, so the panicking task is pushed last to
	// make it run first.
	var after int64
	q.Add()
	deques[0].TryPush(func() { atomic.AddInt64(&after, 1) })
	q.Add()
	deques[0].TryPush(func() { panic("boom") })

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	q.Wait()
	shutdown.Store(true)
	<-done

	if after != 1 {
		t.Fatalf("task after the panicking one did not run: after = %d", after)
	}
	if counters.Snapshot().TasksExecuted != 2 {
		t.Fatalf("TasksExecuted = %d, want 2", counters.Snapshot().TasksExecuted)
	}
	mu.Lock()
	n := len(logged)
	mu.Unlock()
	if n != 1 {
		t.Fatalf("logger called %d times, want 1", n)
	}
}

func TestWorker_IdlesWithoutExitingBeforeShutdown(t *testing.T) {
	deques := []*queue.Deque{queue.NewDeque(16)}
	global := queue.NewGlobalQueue()
	sel := victim.New(victim.Random, 1)
	counters := &stats.Counters{}
	q := quiesce.New()
	var shutdown atomic.Bool

	w := newTestWorker(0, deques, global, sel, q, counters, &shutdown)
	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("worker exited while shutdown was never requested")
	case <-time.After(20 * time.Millisecond):
	}

	shutdown.Store(true)
	<-done
}
