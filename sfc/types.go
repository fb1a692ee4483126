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

// Package sfc maps between a one-dimensional distance along a space-filling
// curve and two-dimensional integer coordinates in a square grid.
//
// Nearby distances land on nearby cells, which makes the mapping useful for
// spatial indexing, tile iteration order and cache-friendly traversal.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-sfc/sfc"
//
//	h, err := sfc.NewHilbert[uint32](16)
//	if err != nil {
//	    return err
//	}
//	x, y, err := h.Map(128)     // (8, 8)
//	t, err := h.MapInverse(x, y) // 128
//
// All curves are immutable values; their methods are safe for concurrent use.
package sfc

// Unsigned is a constraint for the unsigned integer types a curve can be
// instantiated with.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Point is a cell of the grid.
type Point[T Unsigned] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Unsigned](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Curve is a bijection between distances in [0, Size()) and the cells of a
// grid with the extents reported by Dimensions.
//
// Implementations must be safe for concurrent use.
type Curve[T Unsigned] interface {
	// Map returns the cell at distance t.
	Map(t T) (x, y T, err error)

	// MapInverse returns the distance of cell (x, y).
	MapInverse(x, y T) (T, error)

	// Dimensions returns the grid width and height.
	Dimensions() (T, T)

	// Size returns the number of cells, which bounds the valid distances.
	Size() T
}
