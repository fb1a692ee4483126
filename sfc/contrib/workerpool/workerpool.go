// Copyright 2026 The go-sfc Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for mapping large
// batches of distances or points. Workers are spawned once and reused, so
// repeated batch calls avoid per-call goroutine setup.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForErr(len(keys), func(start, end int) error {
//	    return mapRange(keys[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned at creation and run
// until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// errSlot holds one chunk's result. Chunks finish on different cores, so
// slots are kept on separate cache lines.
type errSlot struct {
	err error
	_   cpu.CacheLinePad
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
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

// Close shuts down the pool. Pending work completes. Close may be called
// more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls fn
// on each. It blocks until every chunk is done. A closed pool runs fn(0, n)
// on the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	_ = p.ParallelForErr(n, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelForErr is ParallelFor for chunk functions that can fail. Every
// chunk runs to completion; the error of the lowest failing chunk is
// returned, so the result does not depend on scheduling.
func (p *Pool) ParallelForErr(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if p.closed.Load() {
		return fn(0, n)
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers
	chunks := (n + chunkSize - 1) / chunkSize
	slots := make([]errSlot, chunks)

	var wg sync.WaitGroup
	wg.Add(chunks)
	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		p.workC <- workItem{
			fn: func() {
				slots[i].err = fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	for i := range slots {
		if slots[i].err != nil {
			return slots[i].err
		}
	}
	return nil
}
