// Copyright 2025 The go-roundmult Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool whose
// work ranges start on multiples of a vector width.
//
// A SIMD kernel that gets [start, end) ranges from ParallelForAligned only
// ever sees a partial vector in the very last range, so every worker but
// one can run the full-vector loop without a tail.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	m, _ := round.LanesMultOf[uint](round.ScalableTag[float32]{})
//	pool.ParallelForAligned(len(data), m, func(start, end int) {
//	    process(data[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-roundmult/round"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, round.NewUnchecked[uint](1), fn)
}

// ParallelForAligned is like ParallelFor but every range except the last
// starts and ends on a multiple of align.
func (p *Pool) ParallelForAligned(n int, align round.NonZeroPow2[uint], fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	p.run(chunkSize(n, workers, align), n, workers, fn)
}

// ParallelForBatched hands out batches of batchSize indices (rounded up to
// align) with atomic work stealing. This balances load better than
// ParallelForAligned when work per item varies.
func (p *Pool) ParallelForBatched(n, batchSize int, align round.NonZeroPow2[uint], fn func(start, end int)) {
	if n <= 0 {
		return
	}

	batch := max(batchSize, 1)
	if up, ok := round.Up(uint(batch), align); ok && up <= uint(n) {
		batch = int(up)
	}

	numBatches := ceilDiv(n, batch)
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(nextBatch.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

func (p *Pool) run(chunk, n, workers int, fn func(start, end int)) {
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			// Aligned chunks may cover n with fewer workers.
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// chunkSize returns the per-worker range length: n split evenly across
// workers, then rounded up to align.
func chunkSize(n, workers int, align round.NonZeroPow2[uint]) int {
	chunk := uint(ceilDiv(n, workers))
	if up, ok := round.Up(chunk, align); ok {
		chunk = up
	}
	return int(min(chunk, uint(n)))
}

func ceilDiv(n, d int) int {
	up, _ := round.Up(uint(n), round.NewNonZeroUnchecked(uint(d)))
	return int(up) / d
}
