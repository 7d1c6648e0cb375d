// Copyright 2026 go-bitwise Authors
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

package bitwise

import "unsafe"

// This file provides the leading/trailing run counters. Each zero counter
// has a portable bisection implementation valid at any width, plus a
// per-width registry entry that the dispatch files repoint at the math/bits
// form during package init. The one counters are the zero counters applied
// to the complement.

// Per-width counter registry. Every entry starts at the bisection form;
// installIntrinsicCounters swaps in the math/bits forms on architectures
// with native count instructions. Both forms return identical results for
// every input.
var (
	trailingZeros8  = trailingZerosBisect[uint8]
	trailingZeros16 = trailingZerosBisect[uint16]
	trailingZeros32 = trailingZerosBisect[uint32]
	trailingZeros64 = trailingZerosBisect[uint64]

	leadingZeros8  = leadingZerosBisect[uint8]
	leadingZeros16 = leadingZerosBisect[uint16]
	leadingZeros32 = leadingZerosBisect[uint32]
	leadingZeros64 = leadingZerosBisect[uint64]
)

// TrailingZeroCount returns the number of consecutive zero bits starting at
// the least significant bit, stopping at the first set bit. It returns the
// bit width of T when value is 0.
func TrailingZeroCount[T Unsigned](value T) int {
	switch unsafe.Sizeof(value) {
	case 1:
		return trailingZeros8(uint8(value))
	case 2:
		return trailingZeros16(uint16(value))
	case 4:
		return trailingZeros32(uint32(value))
	default:
		return trailingZeros64(uint64(value))
	}
}

// LeadingZeroCount returns the number of consecutive zero bits starting at
// the most significant bit, stopping at the first set bit. It returns the
// bit width of T when value is 0.
func LeadingZeroCount[T Unsigned](value T) int {
	switch unsafe.Sizeof(value) {
	case 1:
		return leadingZeros8(uint8(value))
	case 2:
		return leadingZeros16(uint16(value))
	case 4:
		return leadingZeros32(uint32(value))
	default:
		return leadingZeros64(uint64(value))
	}
}

// LeadingOneCount returns the number of consecutive one bits starting at the
// most significant bit, stopping at the first zero bit. It returns the bit
// width of T when every bit of value is set.
// For example, LeadingOneCount(uint32(0xFF0FFF00)) is 8.
func LeadingOneCount[T Unsigned](value T) int {
	return LeadingZeroCount(^value)
}

// TrailingOneCount returns the number of consecutive one bits starting at
// the least significant bit, stopping at the first zero bit. It returns the
// bit width of T when every bit of value is set.
// For example, TrailingOneCount(uint32(0x00FF00FF)) is 8.
func TrailingOneCount[T Unsigned](value T) int {
	return TrailingZeroCount(^value)
}

// trailingZerosBisect counts trailing zeros by halving a low-bits mask:
// whenever the masked half is empty, the run extends past it, so the value
// shifts down and the half width is added to the count. O(log N) steps,
// branch pattern independent of the data beyond the zero check.
func trailingZerosBisect[T Unsigned](value T) int {
	if value == 0 {
		return BitSize[T]()
	}
	if value&1 != 0 {
		return 0
	}
	zeroBits := 0
	shift := BitSize[T]() >> 1
	mask := MaxValue[T]() >> shift
	for shift != 0 {
		if value&mask == 0 {
			value >>= shift
			zeroBits |= shift
		}
		shift >>= 1
		mask >>= shift
	}
	return zeroBits
}

// leadingZerosBisect counts leading zeros by probing the high half of the
// remaining window: if the high half is empty its width joins the count,
// otherwise the search narrows to it. O(log N) steps.
func leadingZerosBisect[T Unsigned](value T) int {
	if value == 0 {
		return BitSize[T]()
	}
	zeroBits := 0
	for shift := BitSize[T]() >> 1; shift != 0; shift >>= 1 {
		if tmp := value >> shift; tmp != 0 {
			value = tmp
		} else {
			zeroBits |= shift
		}
	}
	return zeroBits
}
