// File: task.go
// Task is the opaque, one-shot unit of work the pool executes.
// License: Apache-2.0
package workpool

// Task is a no-argument, no-return callable. It may panic; a panic is
// captured by the worker that runs it and never crashes the pool or
// affects sibling tasks.
type Task = func()
