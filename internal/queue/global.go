// File: internal/queue/global.go
// GlobalQueue is the pool-wide unbounded overflow queue (C3). It wraps
// github.com/eapache/queue's ring-buffer FIFO queue with the same single
// mutex discipline as Deque, matching the scheduler's "same shape as C2
// minus capacity bound" contract: any thread may push at the back, any
// thread may steal from the front, FIFO order preserves approximate
// submission order for spillover.
//
// eapache/queue ships in the teacher's go.mod but nothing in
// momentics-hioload-ws ever imports it; it auto-grows and never needs a
// capacity argument, which is exactly the shape an unbounded overflow
// queue needs.
// License: Apache-2.0
package queue

import (
	"sync"

	"github.com/eapache/queue"
)

// GlobalQueue is the unbounded, FIFO-draining overflow queue shared by
// every worker in the pool.
type GlobalQueue struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewGlobalQueue creates an empty global overflow queue.
func NewGlobalQueue() *GlobalQueue {
	return &GlobalQueue{q: queue.New()}
}

// Push appends task to the back. Never fails; the queue is unbounded.
func (g *GlobalQueue) Push(task Task) {
	g.mu.Lock()
	g.q.Add(task)
	g.mu.Unlock()
}

// TrySteal removes and returns the oldest queued task (FIFO).
func (g *GlobalQueue) TrySteal() (Task, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.q.Length() == 0 {
		return nil, false
	}
	return g.q.Remove().(Task), true
}

// Empty reports whether the overflow queue is currently empty. Advisory
// only.
func (g *GlobalQueue) Empty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Length() == 0
}

// Size reports the current number of queued tasks. Advisory only.
func (g *GlobalQueue) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.q.Length()
}
