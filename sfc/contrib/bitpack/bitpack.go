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

package bitpack

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/ajroetker/go-sfc/sfc"
)

// ErrShortInput is returned when a packed stream holds fewer keys than asked for.
var ErrShortInput = errors.New("bitpack: input too short")

// KeyWidth returns the number of bits needed to hold any distance of c.
func KeyWidth[T sfc.Unsigned](c sfc.Curve[T]) int {
	return bits.Len64(uint64(c.Size() - 1))
}

// MaxBits returns the minimum number of bits that represents every value in
// src. Returns 0 for empty slices or slices containing only zeros.
func MaxBits[T sfc.Unsigned](src []T) int {
	var acc T
	for _, v := range src {
		acc |= v
	}
	return bits.Len64(uint64(acc))
}

// PackedSize returns the number of bytes needed to store n values of
// bitWidth bits each.
func PackedSize(n, bitWidth int) int {
	if bitWidth == 0 || n == 0 {
		return 0
	}
	return (n*bitWidth + 7) / 8
}

// Pack writes each value of src into dst using exactly bitWidth bits and
// returns the number of bytes written. Bits above bitWidth are dropped.
//
// dst must hold PackedSize(len(src), bitWidth) bytes and start zeroed.
// bitWidth is clamped to the width of T.
func Pack[T sfc.Unsigned](src []T, bitWidth int, dst []byte) int {
	if len(src) == 0 || bitWidth <= 0 {
		return 0
	}
	bitWidth = min(bitWidth, typeBits[T]())
	mask := widthMask(bitWidth)

	bitPos := 0
	bytePos := 0
	for _, v := range src {
		packValue(uint64(v)&mask, bitWidth, &bitPos, &bytePos, dst)
	}
	if bitPos > 0 {
		return bytePos + 1
	}
	return bytePos
}

func packValue(val uint64, bitWidth int, bitPos, bytePos *int, dst []byte) {
	remaining := bitWidth
	for remaining > 0 {
		bitsToWrite := min(remaining, 8-*bitPos)

		chunk := val & (1<<bitsToWrite - 1)
		val >>= bitsToWrite
		remaining -= bitsToWrite

		dst[*bytePos] |= byte(chunk << *bitPos)

		*bitPos += bitsToWrite
		if *bitPos >= 8 {
			*bitPos = 0
			*bytePos++
		}
	}
}

// Unpack reads values of bitWidth bits from src into dst and returns how many
// complete values were read.
func Unpack[T sfc.Unsigned](src []byte, bitWidth int, dst []T) int {
	if len(src) == 0 || bitWidth <= 0 || len(dst) == 0 {
		return 0
	}
	bitWidth = min(bitWidth, typeBits[T]())
	mask := widthMask(bitWidth)

	bitPos := 0
	bytePos := 0
	totalBits := len(src) * 8

	var i int
	for i = 0; i < len(dst); i++ {
		if bytePos*8+bitPos+bitWidth > totalBits {
			break
		}
		dst[i] = T(unpackValue(bitWidth, &bitPos, &bytePos, src) & mask)
	}
	return i
}

func unpackValue(bitWidth int, bitPos, bytePos *int, src []byte) uint64 {
	var val uint64
	remaining := bitWidth
	shift := 0

	for remaining > 0 && *bytePos < len(src) {
		bitsToRead := min(remaining, 8-*bitPos)

		chunk := (src[*bytePos] >> *bitPos) & byte(1<<bitsToRead-1)
		val |= uint64(chunk) << shift

		shift += bitsToRead
		remaining -= bitsToRead
		*bitPos += bitsToRead
		if *bitPos >= 8 {
			*bitPos = 0
			*bytePos++
		}
	}
	return val
}

// DeltaEncode writes the difference between consecutive values of src to dst:
//
//	dst[0] = src[0] - base
//	dst[i] = src[i] - src[i-1]
//
// For keys sorted along the curve the deltas are small and pack tightly.
func DeltaEncode[T sfc.Unsigned](src []T, base T, dst []T) {
	if len(src) == 0 || len(dst) < len(src) {
		return
	}
	prev := base
	for i, v := range src {
		dst[i] = v - prev
		prev = v
	}
}

// DeltaDecode reverses DeltaEncode. src and dst may be the same slice.
func DeltaDecode[T sfc.Unsigned](src []T, base T, dst []T) {
	if len(src) == 0 || len(dst) < len(src) {
		return
	}
	acc := base
	for i, d := range src {
		acc += d
		dst[i] = acc
	}
}

// EncodeKeys packs distances of c at KeyWidth(c) bits each. Every key must be
// a valid distance.
func EncodeKeys[T sfc.Unsigned](c sfc.Curve[T], keys []T) ([]byte, error) {
	size := c.Size()
	for i, k := range keys {
		if k >= size {
			return nil, fmt.Errorf("bitpack: key %d: %w: distance %d not in [0, %d)", i, sfc.ErrOutOfRange, k, size)
		}
	}
	width := KeyWidth(c)
	dst := make([]byte, PackedSize(len(keys), width))
	Pack(keys, width, dst)
	return dst, nil
}

// DecodeKeys unpacks n distances written by EncodeKeys for the same curve.
func DecodeKeys[T sfc.Unsigned](c sfc.Curve[T], src []byte, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("bitpack: negative key count %d", n)
	}
	keys := make([]T, n)
	width := KeyWidth(c)
	if width == 0 {
		// Single-cell curve: every key is zero and nothing was written.
		return keys, nil
	}
	if got := Unpack(src, width, keys); got < n {
		return nil, fmt.Errorf("%w: %d of %d keys", ErrShortInput, got, n)
	}
	return keys, nil
}

func typeBits[T sfc.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

func widthMask(bitWidth int) uint64 {
	if bitWidth >= 64 {
		return ^uint64(0)
	}
	return 1<<bitWidth - 1
}
