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

// Package bitpack stores curve distances using only the bits the curve needs.
//
// A Hilbert curve of side n has distances below n*n, so each key needs
// 2*log2(n) bits regardless of the integer type it is held in. Keys of a
// 1024×1024 curve pack into 20 bits instead of 32 or 64.
//
// # Core Functions
//
//   - KeyWidth(c) - bits per key for curve c
//   - Pack(src, bitWidth, dst) / Unpack(src, bitWidth, dst) - raw bit streams
//   - DeltaEncode / DeltaDecode - shrink sorted key runs before packing
//   - EncodeKeys / DecodeKeys - range-checked packing at KeyWidth
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sfc/sfc/contrib/bitpack"
//
//	buf, err := bitpack.EncodeKeys(h, keys)
//	...
//	keys, err = bitpack.DecodeKeys(h, buf, len(keys))
//
// Values are written least significant bit first, starting at bit 0 of the
// first byte.
package bitpack
