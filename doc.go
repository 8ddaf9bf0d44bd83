// File: doc.go
// Package workpool implements an in-process work-stealing task
// scheduler: a fixed pool of worker goroutines that execute
// user-submitted closures, balancing load by stealing between
// per-worker deques and falling back to a shared overflow queue.
//
// The package exposes fire-and-forget submission (Submit), submission
// with a result handle (SubmitTask/SubmitFunc, returning a Future),
// quiescence (Wait), orderly shutdown (Close), and two parallel
// algorithms built purely on top of that surface (ParallelFor,
// ParallelReduce).
//
// Concurrency model: every worker runs on its own goroutine for the
// lifetime of the pool. Tasks run synchronously to completion on
// whichever worker dequeues them; there is no cooperative scheduling and
// no cancellation of in-flight or enqueued work. Calling Wait from
// inside a task running on the same pool deadlocks — a running task
// holds one unit of quiescence that cannot drop until it returns, but it
// is blocked waiting for the count to reach zero. This is documented,
// not detected.
// License: Apache-2.0
package workpool
