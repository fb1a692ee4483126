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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewHilbert(t *testing.T) {
	tests := []struct {
		name string
		n    uint32
		want error
	}{
		{name: "zero", n: 0, want: ErrNotPositive},
		{name: "three", n: 3, want: ErrNotPowerOfTwo},
		{name: "five", n: 5, want: ErrNotPowerOfTwo},
		{name: "twelve", n: 12, want: ErrNotPowerOfTwo},
		{name: "one", n: 1},
		{name: "two", n: 2},
		{name: "sixteen", n: 16},
		{name: "largest uint32", n: 1 << 15},
		{name: "first overflowing uint32", n: 1 << 16, want: ErrTooLarge},
		{name: "top bit", n: 1 << 31, want: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHilbert(tt.n)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			w, hgt := h.Dimensions()
			assert.Equal(t, tt.n, w)
			assert.Equal(t, tt.n, hgt)
			assert.Equal(t, tt.n*tt.n, h.Size())
		})
	}
}

func TestNewHilbertWidthLimits(t *testing.T) {
	_, err := NewHilbert[uint8](8)
	assert.NoError(t, err)
	_, err = NewHilbert[uint8](16)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = NewHilbert[uint16](128)
	assert.NoError(t, err)
	_, err = NewHilbert[uint16](256)
	assert.ErrorIs(t, err, ErrTooLarge)

	h, err := NewHilbert[uint64](1 << 31)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<62, h.Size())
	_, err = NewHilbert[uint64](1 << 32)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestHilbertKnownPoints(t *testing.T) {
	h, err := NewHilbert[uint32](16)
	require.NoError(t, err)

	tests := []struct {
		d, x, y uint32
	}{
		{0, 0, 0},
		{16, 4, 0},
		{32, 4, 4},
		{48, 3, 7},
		{64, 0, 8},
		{80, 0, 12},
		{96, 4, 12},
		{112, 7, 11},
		{128, 8, 8},
		{144, 8, 12},
		{160, 12, 12},
		{170, 15, 15},
		{176, 15, 11},
		{192, 15, 7},
		{208, 11, 7},
		{224, 11, 3},
		{240, 12, 0},
		{255, 15, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.d), func(t *testing.T) {
			x, y, err := h.Map(tt.d)
			require.NoError(t, err)
			if x != tt.x || y != tt.y {
				t.Errorf("Map(%d) = (%d, %d), want (%d, %d)", tt.d, x, y, tt.x, tt.y)
			}

			d, err := h.MapInverse(tt.x, tt.y)
			require.NoError(t, err)
			if d != tt.d {
				t.Errorf("MapInverse(%d, %d) = %d, want %d", tt.x, tt.y, d, tt.d)
			}
		})
	}
}

func TestHilbertFirstCells(t *testing.T) {
	h, err := NewHilbert[uint8](4)
	require.NoError(t, err)

	want := []Point[uint8]{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for d, p := range want {
		x, y, err := h.Map(uint8(d))
		require.NoError(t, err)
		assert.Equal(t, p, Pt(x, y), "Map(%d)", d)
	}
}

func TestHilbertBijective(t *testing.T) {
	for _, n := range []uint32{1, 2, 4, 8, 16, 32, 64} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			h, err := NewHilbert(n)
			require.NoError(t, err)

			points := make([]Point[uint32], 0, h.Size())
			for d := range h.Size() {
				x, y, err := h.Map(d)
				require.NoError(t, err)
				if x >= n || y >= n {
					t.Fatalf("Map(%d) = (%d, %d), outside [0, %d)", d, x, y, n)
				}
				back, err := h.MapInverse(x, y)
				require.NoError(t, err)
				if back != d {
					t.Fatalf("MapInverse(Map(%d)) = %d", d, back)
				}
				points = append(points, Pt(x, y))
			}
			assert.Len(t, lo.Uniq(points), int(h.Size()))
		})
	}
}

func TestHilbertInverseBijective(t *testing.T) {
	h, err := NewHilbert[uint16](32)
	require.NoError(t, err)

	for x := range uint16(32) {
		for y := range uint16(32) {
			d, err := h.MapInverse(x, y)
			require.NoError(t, err)
			gx, gy, err := h.Map(d)
			require.NoError(t, err)
			if gx != x || gy != y {
				t.Fatalf("Map(MapInverse(%d, %d)) = (%d, %d)", x, y, gx, gy)
			}
		}
	}
}

func TestHilbertLocality(t *testing.T) {
	h, err := NewHilbert[uint32](16)
	require.NoError(t, err)

	x0, y0, err := h.Map(0)
	require.NoError(t, err)
	for d := uint32(1); d < h.Size(); d++ {
		x1, y1, err := h.Map(d)
		require.NoError(t, err)
		dx, dy := absDiff(x0, x1), absDiff(y0, y1)
		if max(dx, dy) != 1 || dx+dy != 1 {
			t.Fatalf("moved by more than 1: (%d,%d) -> (%d,%d)", x0, y0, x1, y1)
		}
		x0, y0 = x1, y1
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestHilbertDegenerate(t *testing.T) {
	h, err := NewHilbert[uint32](1)
	require.NoError(t, err)

	x, y, err := h.Map(0)
	require.NoError(t, err)
	assert.Equal(t, Pt[uint32](0, 0), Pt(x, y))

	d, err := h.MapInverse(0, 0)
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Equal(t, uint32(1), h.Size())
	assert.Equal(t, 0, h.Order())

	_, _, err = h.Map(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHilbertBounds(t *testing.T) {
	h, err := NewHilbert[uint32](16)
	require.NoError(t, err)

	_, _, err = h.Map(256)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = h.Map(255)
	assert.NoError(t, err)

	tests := []struct {
		x, y uint32
		ok   bool
	}{
		{16, 15, false},
		{15, 16, false},
		{16, 16, false},
		{15, 15, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		_, err := h.MapInverse(tt.x, tt.y)
		if tt.ok {
			assert.NoError(t, err, "MapInverse(%d, %d)", tt.x, tt.y)
		} else {
			assert.ErrorIs(t, err, ErrOutOfRange, "MapInverse(%d, %d)", tt.x, tt.y)
		}
	}
}

func TestHilbertOutOfRangeMessage(t *testing.T) {
	h, err := NewHilbert[uint32](16)
	require.NoError(t, err)

	_, _, err = h.Map(300)
	assert.EqualError(t, err, "sfc: out of range: distance 300 not in [0, 256)")
}

func TestHilbertMaxSide(t *testing.T) {
	h, err := NewHilbert[uint64](1 << 31)
	require.NoError(t, err)

	last := h.Size() - 1
	x, y, err := h.Map(last)
	require.NoError(t, err)
	assert.Equal(t, Pt[uint64](1<<31-1, 0), Pt(x, y))

	d, err := h.MapInverse(x, y)
	require.NoError(t, err)
	assert.Equal(t, last, d)
	assert.Equal(t, 31, h.Order())
}

func TestHilbertAll(t *testing.T) {
	h, err := NewHilbert[uint16](8)
	require.NoError(t, err)

	var n uint16
	for d, p := range h.All() {
		require.Equal(t, n, d)
		x, y, err := h.Map(d)
		require.NoError(t, err)
		assert.Equal(t, Pt(x, y), p)
		n++
	}
	assert.Equal(t, h.Size(), n)

	var seen int
	for range h.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestHilbertString(t *testing.T) {
	h, err := NewHilbert[uint32](16)
	require.NoError(t, err)
	assert.Equal(t, "hilbert(16)", h.String())
}

func TestHilbertConcurrent(t *testing.T) {
	h, err := NewHilbert[uint32](64)
	require.NoError(t, err)

	var g errgroup.Group
	for w := range uint32(8) {
		g.Go(func() error {
			for d := w; d < h.Size(); d += 8 {
				x, y, err := h.Map(d)
				if err != nil {
					return err
				}
				back, err := h.MapInverse(x, y)
				if err != nil {
					return err
				}
				if back != d {
					return fmt.Errorf("MapInverse(Map(%d)) = %d", d, back)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
