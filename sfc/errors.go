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

import "errors"

// Construction errors report a misconfigured curve; ErrOutOfRange reports a
// bad argument to an individual call. Errors returned by this package wrap one
// of these and should be matched with errors.Is.
var (
	// ErrOutOfRange is returned when a distance or coordinate lies outside the curve.
	ErrOutOfRange = errors.New("sfc: out of range")

	// ErrNotPowerOfTwo is returned when a curve that needs a power-of-two side
	// is given some other size.
	ErrNotPowerOfTwo = errors.New("sfc: size is not a power of two")

	// ErrNotPowerOfThree is reserved for base-3 curves such as Peano's.
	ErrNotPowerOfThree = errors.New("sfc: size is not a power of three")

	// ErrNotPositive is returned when a curve is given a side of zero.
	ErrNotPositive = errors.New("sfc: size is not positive")

	// ErrTooLarge is returned when the number of cells does not fit the
	// curve's integer type.
	ErrTooLarge = errors.New("sfc: size overflows integer type")
)
