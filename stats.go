// File: stats.go
// Stats is the read-only snapshot of the pool's monotonic counters.
// License: Apache-2.0
package workpool

import "github.com/momentics/workpool/internal/stats"

// Stats is a point-in-time, read-only snapshot of the pool's five
// monotonic counters.
type Stats = stats.Snapshot
