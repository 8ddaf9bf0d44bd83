// File: parallel.go
// ParallelFor and ParallelReduce are thin chunk-and-fan-out layers over
// the pool's public surface — external consumers per the scheduler
// specification, ported from the original C++ source's
// runtime::parallel_for/parallel_reduce templates
// (_examples/original_source/include/runtime/parallel_for.h,
// parallel_reduce.h) rather than reimplemented from scratch.
// License: Apache-2.0
package workpool

import "context"

// DefaultChunkSize is the default number of indices per chunk, matching
// runtime::config::parallel_chunk_size in the original source.
const DefaultChunkSize = 1024

// ParallelFor partitions [start, end) into chunks of chunkSize indices
// and runs body(i) for every i, fanning the chunks out across p via
// SubmitTask and blocking until all chunks finish. If chunkSize <= 0,
// DefaultChunkSize is used. If the whole range fits in one chunk, it
// runs inline without submitting anything. If a submission fails, a
// chunk fails, or ctx is done while waiting, it returns that error at
// once without waiting for the chunks already submitted.
func ParallelFor(ctx context.Context, p *Pool, start, end int, body func(i int), chunkSize int) error {
	if start >= end {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	rangeLen := end - start
	if rangeLen <= chunkSize {
		for i := start; i < end; i++ {
			body(i)
		}
		return nil
	}

	var futures []*Future[struct{}]
	for chunkStart := start; chunkStart < end; chunkStart += chunkSize {
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > end {
			chunkEnd = end
		}
		cs, ce := chunkStart, chunkEnd
		fut, err := SubmitTask(p, func() (struct{}, error) {
			for i := cs; i < ce; i++ {
				body(i)
			}
			return struct{}{}, nil
		})
		if err != nil {
			return err
		}
		futures = append(futures, fut)
	}

	for _, fut := range futures {
		if _, err := fut.Get(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ParallelReduce partitions [start, end) into chunks, maps each index
// with mapFn and folds the chunk with reduceFn seeded at init, then
// combines the per-chunk partials with reduceFn in submission order
// (not completion order). reduceFn must be associative for deterministic
// results; it need not be commutative.
func ParallelReduce[T any](
	ctx context.Context,
	p *Pool,
	start, end int,
	init T,
	mapFn func(i int) T,
	reduceFn func(a, b T) T,
	chunkSize int,
) (T, error) {
	if start >= end {
		return init, nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	rangeLen := end - start
	if rangeLen <= chunkSize {
		result := init
		for i := start; i < end; i++ {
			result = reduceFn(result, mapFn(i))
		}
		return result, nil
	}

	var futures []*Future[T]
	for chunkStart := start; chunkStart < end; chunkStart += chunkSize {
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > end {
			chunkEnd = end
		}
		cs, ce := chunkStart, chunkEnd
		fut, err := SubmitTask(p, func() (T, error) {
			partial := init
			for i := cs; i < ce; i++ {
				partial = reduceFn(partial, mapFn(i))
			}
			return partial, nil
		})
		if err != nil {
			var zero T
			return zero, err
		}
		futures = append(futures, fut)
	}

	result := init
	for _, fut := range futures {
		partial, err := fut.Get(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		result = reduceFn(result, partial)
	}
	return result, nil
}

// Numeric is the set of result types ParallelMapReduce can sum.
type Numeric interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ParallelMapReduce is ParallelReduce specialized to summation, matching
// the original source's runtime::parallel_map_reduce convenience
// wrapper.
func ParallelMapReduce[T Numeric](
	ctx context.Context,
	p *Pool,
	start, end int,
	init T,
	mapFn func(i int) T,
	chunkSize int,
) (T, error) {
	return ParallelReduce(ctx, p, start, end, init, mapFn, func(a, b T) T { return a + b }, chunkSize)
}
