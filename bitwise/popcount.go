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

// Per-width population count registry, analogous to the counter registry in
// count.go. installIntrinsicCounters swaps in math/bits.OnesCountN on
// architectures with a native population count.
var (
	popCount8  = popCountKernighan[uint8]
	popCount16 = popCountKernighan[uint16]
	popCount32 = popCountKernighan[uint32]
	popCount64 = popCountKernighan[uint64]
)

// PopCount returns the number of set bits in value.
func PopCount[T Unsigned](value T) int {
	switch unsafe.Sizeof(value) {
	case 1:
		return popCount8(uint8(value))
	case 2:
		return popCount16(uint16(value))
	case 4:
		return popCount32(uint32(value))
	default:
		return popCount64(uint64(value))
	}
}

// ZeroCount returns the number of clear bits in value, the population count
// of the complement.
func ZeroCount[T Unsigned](value T) int {
	return PopCount(^value)
}

// popCountKernighan counts set bits by clearing the lowest one per step,
// so it runs in O(set bits) rather than O(width).
func popCountKernighan[T Unsigned](value T) int {
	count := 0
	for value != 0 {
		value &= value - 1
		count++
	}
	return count
}
