// Copyright 2026 go-sfc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch maps slices of distances or points through a curve, splitting
// large inputs across a worker pool.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pts := make([]sfc.Point[uint32], len(keys))
//	if err := batch.Map(pool, curve, keys, pts); err != nil {
//	    return err
//	}
//
// Small inputs, a nil pool, or SFC_NO_PARALLEL set in the environment keep the
// work on the calling goroutine.
package batch

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ajroetker/go-sfc/sfc"
	"github.com/ajroetker/go-sfc/sfc/contrib/workerpool"
)

// MinParallel is the smallest input length split across a pool.
const MinParallel = 4096

// ErrShortBuffer is returned when dst cannot hold one result per input.
var ErrShortBuffer = errors.New("batch: destination shorter than source")

// noParallel caches NoParallelEnv at package init.
var noParallel = NoParallelEnv()

// NoParallelEnv reports whether SFC_NO_PARALLEL is set. Any non-empty value
// other than a false boolean counts as set.
func NoParallelEnv() bool {
	val := os.Getenv("SFC_NO_PARALLEL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Map writes the cell of every distance in ts to the same index of dst.
// On error the contents of dst are unspecified.
func Map[T sfc.Unsigned](pool *workerpool.Pool, c sfc.Curve[T], ts []T, dst []sfc.Point[T]) error {
	if len(dst) < len(ts) {
		return fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(dst), len(ts))
	}
	return run(pool, len(ts), func(start, end int) error {
		for i := start; i < end; i++ {
			x, y, err := c.Map(ts[i])
			if err != nil {
				return fmt.Errorf("batch: element %d: %w", i, err)
			}
			dst[i] = sfc.Pt(x, y)
		}
		return nil
	})
}

// MapInverse writes the distance of every point in pts to the same index of
// dst. On error the contents of dst are unspecified.
func MapInverse[T sfc.Unsigned](pool *workerpool.Pool, c sfc.Curve[T], pts []sfc.Point[T], dst []T) error {
	if len(dst) < len(pts) {
		return fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(dst), len(pts))
	}
	return run(pool, len(pts), func(start, end int) error {
		for i := start; i < end; i++ {
			t, err := c.MapInverse(pts[i].X, pts[i].Y)
			if err != nil {
				return fmt.Errorf("batch: element %d: %w", i, err)
			}
			dst[i] = t
		}
		return nil
	})
}

func run(pool *workerpool.Pool, n int, fn func(start, end int) error) error {
	if pool == nil || noParallel || n < MinParallel {
		return fn(0, n)
	}
	return pool.ParallelForErr(n, fn)
}
