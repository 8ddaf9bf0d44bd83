// File: future.go
// Future is the result handle returned by SubmitTask/SubmitFunc. It
// delivers the callable's return value or its propagated panic exactly
// once, and supports blocking get, timed wait, and ready-polling, per
// the scheduler's submit_task contract. Grounded on api.Result[T] (the
// value+error pair it stores) and api.Cancelable (the Done()/Err()
// shape it exposes; Cancel is unsupported since the scheduler never
// cancels in-flight or enqueued tasks).
// License: Apache-2.0
package workpool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/momentics/workpool/api"
)

var _ api.Cancelable = (*Future[struct{}])(nil)

// Future is a one-shot result handle for a task submitted via
// SubmitTask or SubmitFunc.
type Future[T any] struct {
	done      chan struct{}
	mu        sync.Mutex
	result    api.Result[T]
	delivered bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// deliver stores the result and wakes every waiter. Only the first call
// has any effect, guaranteeing at-most-once delivery.
func (f *Future[T]) deliver(value T, err error) {
	f.mu.Lock()
	if !f.delivered {
		f.result = api.Result[T]{Value: value, Err: err}
		f.delivered = true
		close(f.done)
	}
	f.mu.Unlock()
}

// deliverPanic records a recovered panic as the future's error, so
// SubmitTask's caller observes the same failure the task raised instead
// of hanging forever.
func (f *Future[T]) deliverPanic(r any) {
	var zero T
	f.deliver(zero, fmt.Errorf("task panicked: %v", r))
}

// Ready reports whether the result has been delivered yet.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get blocks until the result is delivered or ctx is done, whichever
// comes first. It rethrows any panic the task raised as a plain error.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait blocks for up to timeout for the result to be delivered. The
// third return value reports whether delivery happened in time; timing
// out never cancels the underlying task, it only stops this observer
// from waiting.
func (f *Future[T]) Wait(timeout time.Duration) (T, error, bool) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.result.Value, f.result.Err, true
	case <-time.After(timeout):
		var zero T
		return zero, nil, false
	}
}

// Done implements api.Cancelable: it closes once the result has been
// delivered.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Err implements api.Cancelable: it returns the delivered error, if
// any, or nil if the result has not been delivered yet.
func (f *Future[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result.Err
}

// Cancel implements api.Cancelable. The scheduler never cancels
// in-flight or enqueued tasks, so this always fails.
func (f *Future[T]) Cancel() error {
	return api.ErrNotSupported
}

// SubmitTask submits fn to p and returns a Future that delivers fn's
// return value or its error. It is a thin wrapper around Submit: the
// wrapping closure stores fn's outcome into the future and never
// recurses into SubmitTask itself, unlike the divergent draft the
// scheduler specification calls out.
func SubmitTask[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	fut := newFuture[R]()
	err := p.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				fut.deliverPanic(r)
			}
		}()
		v, err := fn()
		fut.deliver(v, err)
	})
	if err != nil {
		return nil, err
	}
	return fut, nil
}

// SubmitFunc is SubmitTask for callables that cannot fail.
func SubmitFunc[R any](p *Pool, fn func() R) (*Future[R], error) {
	return SubmitTask(p, func() (R, error) {
		return fn(), nil
	})
}
