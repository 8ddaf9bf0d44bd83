// File: internal/victim/selector.go
// Package victim implements the scheduler's victim selector (C4): given
// a worker's own index and an attempt number, it produces the index of
// the peer to try stealing from next.
// License: Apache-2.0
package victim

import "math/rand/v2"

// Policy selects how victims are chosen across a steal sweep.
type Policy int

const (
	// Random returns a uniformly distributed index in [0, N) on every
	// call, independent of attempt number. Self-selection is permitted;
	// it simply fails to steal when the worker's own queue is empty, at
	// negligible cost.
	Random Policy = iota
	// RoundRobin returns (self + attempt) mod N, deterministically
	// visiting each peer once before repeating.
	RoundRobin
)

// Selector picks steal victims according to its configured Policy.
// It holds no randomness state itself — each worker supplies its own
// *rand.Rand, kept thread-local to that worker, so independent workers
// never contend on a shared generator.
type Selector struct {
	policy Policy
	n      int
}

// New creates a selector for a pool of n workers under the given policy.
func New(policy Policy, n int) *Selector {
	return &Selector{policy: policy, n: n}
}

// Victim returns the worker index to try stealing from for the given
// self index and 1-based attempt number. rng is only consulted under the
// Random policy.
func (s *Selector) Victim(self, attempt int, rng *rand.Rand) int {
	if s.policy == RoundRobin {
		return (self + attempt) % s.n
	}
	return rng.IntN(s.n)
}

// NewRand returns a freshly, non-deterministically seeded generator
// suitable for a single worker's exclusive use, mirroring the source's
// thread_local std::mt19937 rng(std::random_device{}()) pattern.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
