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

package sfc

import (
	"fmt"
	"iter"
	"math/bits"
)

// Hilbert is a Hilbert curve over an n×n grid, n a power of two.
//
// The zero value is not usable; construct with NewHilbert.
type Hilbert[T Unsigned] struct {
	n T
}

var _ Curve[uint32] = Hilbert[uint32]{}

// NewHilbert returns a Hilbert curve of side n.
//
// n must be a non-zero power of two and n*n must fit in T. For example uint32
// supports sides up to 32768 and uint64 up to 1<<31.
func NewHilbert[T Unsigned](n T) (Hilbert[T], error) {
	switch {
	case n == 0:
		return Hilbert[T]{}, ErrNotPositive
	case n&(n-1) != 0:
		return Hilbert[T]{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	case n*n == 0:
		// n = 2^k, so n*n wraps to exactly zero once 2k reaches the width of T.
		return Hilbert[T]{}, fmt.Errorf("%w: side %d", ErrTooLarge, n)
	}
	return Hilbert[T]{n: n}, nil
}

// Map returns the cell at distance t, which must be less than Size().
//
// The two low bits of t pick a quadrant of the 2×2 square; every further pair
// picks a quadrant of a square twice as large. Points built so far are rotated
// into the orientation the curve has inside the chosen quadrant.
func (h Hilbert[T]) Map(t T) (x, y T, err error) {
	if t >= h.Size() {
		return 0, 0, fmt.Errorf("%w: distance %d not in [0, %d)", ErrOutOfRange, t, h.Size())
	}
	for i := T(1); i < h.n; i *= 2 {
		rx := t&2 != 0
		ry := t&1 != 0
		if rx {
			ry = !ry
		}
		x, y = rotate(i, x, y, rx, ry)
		if rx {
			x += i
		}
		if ry {
			y += i
		}
		t /= 4
	}
	return x, y, nil
}

// MapInverse returns the distance of cell (x, y); both coordinates must be
// less than the side of the curve.
func (h Hilbert[T]) MapInverse(x, y T) (T, error) {
	if x >= h.n || y >= h.n {
		return 0, fmt.Errorf("%w: point (%d, %d) not in [0, %d)²", ErrOutOfRange, x, y, h.n)
	}
	var t T
	for i := h.n / 2; i > 0; i /= 2 {
		rx := x&i != 0
		ry := y&i != 0
		var a T
		if rx {
			a = 3
		}
		if ry {
			a ^= 1
		}
		t += i * i * a
		// Bit i is consumed; keep rotate's x, y < i precondition.
		x, y = rotate(i, x&(i-1), y&(i-1), rx, ry)
	}
	return t, nil
}

// rotate reflects and transposes (x, y) inside a square of side n as the
// quadrant flags require. Callers guarantee x < n and y < n.
func rotate[T Unsigned](n, x, y T, rx, ry bool) (T, T) {
	if !ry {
		if rx {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// Dimensions returns (n, n).
func (h Hilbert[T]) Dimensions() (T, T) {
	return h.n, h.n
}

// Size returns n*n.
func (h Hilbert[T]) Size() T {
	return h.n * h.n
}

// Order returns log2(n), the number of bit-planes in a coordinate.
func (h Hilbert[T]) Order() int {
	return bits.TrailingZeros64(uint64(h.n))
}

// All iterates over every cell in curve order, yielding each distance with
// its point.
func (h Hilbert[T]) All() iter.Seq2[T, Point[T]] {
	return func(yield func(T, Point[T]) bool) {
		size := h.Size()
		for t := T(0); t < size; t++ {
			x, y, _ := h.Map(t)
			if !yield(t, Pt(x, y)) {
				return
			}
		}
	}
}

// String returns a description such as "hilbert(16)".
func (h Hilbert[T]) String() string {
	return fmt.Sprintf("hilbert(%d)", h.n)
}
