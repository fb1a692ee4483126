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

// Package sort orders points along a space-filling curve.
//
// Sorting cells by their curve distance gives a traversal in which
// consecutive cells are close in the grid, e.g. for tile iteration or
// building a spatial index.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sfc/sfc/contrib/sort"
//
//	h, _ := sfc.NewHilbert[uint32](1024)
//	if err := sort.Points(h, tiles); err != nil {
//	    return err
//	}
//
// Keys are sorted with an LSD radix sort over only the bytes the curve's
// distances occupy, so a 256×256 Hilbert curve needs two passes whatever the
// width of T.
package sort

import (
	"fmt"
	"math/bits"

	"github.com/ajroetker/go-sfc/sfc"
)

// Points sorts pts in place by curve distance. Equal points keep their
// relative order. If any point lies outside the curve, pts is unchanged.
func Points[T sfc.Unsigned](c sfc.Curve[T], pts []sfc.Point[T]) error {
	if len(pts) < 2 {
		if len(pts) == 1 {
			_, err := c.MapInverse(pts[0].X, pts[0].Y)
			return err
		}
		return nil
	}

	keys := make([]T, len(pts))
	if err := Distances(c, pts, keys); err != nil {
		return err
	}
	perm := make([]int, len(pts))
	for i := range perm {
		perm[i] = i
	}
	RadixSort(keys, perm, keyBits(c))

	sorted := make([]sfc.Point[T], len(pts))
	for i, j := range perm {
		sorted[i] = pts[j]
	}
	copy(pts, sorted)
	return nil
}

// Distances writes the curve distance of each point to keys, which must be
// at least as long as pts.
func Distances[T sfc.Unsigned](c sfc.Curve[T], pts []sfc.Point[T], keys []T) error {
	if len(keys) < len(pts) {
		return fmt.Errorf("sort: %d keys for %d points", len(keys), len(pts))
	}
	for i, p := range pts {
		t, err := c.MapInverse(p.X, p.Y)
		if err != nil {
			return fmt.Errorf("sort: point %d: %w", i, err)
		}
		keys[i] = t
	}
	return nil
}

// RadixSort stably sorts keys ascending and applies the same reordering to
// perm, which must have the same length. Only the low keyBits bits of each
// key take part in the comparison; keyBits <= 0 means the full width of T.
func RadixSort[T sfc.Unsigned](keys []T, perm []int, keyBits int) {
	n := len(keys)
	if n < 2 {
		return
	}
	if keyBits <= 0 {
		keyBits = bits.Len64(uint64(^T(0)))
	}

	keyBuf := make([]T, n)
	permBuf := make([]int, n)
	srcK, dstK := keys, keyBuf
	srcP, dstP := perm, permBuf
	passes := (keyBits + 7) / 8
	for pass := range passes {
		radixPass(srcK, dstK, srcP, dstP, pass*8)
		srcK, dstK = dstK, srcK
		srcP, dstP = dstP, srcP
	}
	if passes%2 == 1 {
		copy(keys, srcK)
		copy(perm, srcP)
	}
}

// radixPass scatters src into dst by the byte at shift, carrying the
// permutation alongside.
func radixPass[T sfc.Unsigned](src, dst []T, srcP, dstP []int, shift int) {
	var count [256]int
	for _, k := range src {
		count[(k>>shift)&0xFF]++
	}

	offset := 0
	for b := range 256 {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i, k := range src {
		digit := (k >> shift) & 0xFF
		dst[count[digit]] = k
		dstP[count[digit]] = srcP[i]
		count[digit]++
	}
}

func keyBits[T sfc.Unsigned](c sfc.Curve[T]) int {
	return bits.Len64(uint64(c.Size() - 1))
}
