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

// HasSingleBit reports whether exactly one bit of value is set, that is,
// whether value is a power of two. It returns false for 0.
func HasSingleBit[T Unsigned](value T) bool {
	return value != 0 && value&(value-1) == 0
}

// BitWidth returns the number of bits needed to represent value, the
// position of the highest set bit plus one. It returns 0 for 0.
// For example, BitWidth(uint8(5)) is 3.
func BitWidth[T Unsigned](value T) int {
	return BitSize[T]() - LeadingZeroCount(value)
}

// BitFloor returns the largest power of two no greater than value.
// It returns 0 for 0. For example, BitFloor(uint8(5)) is 4.
func BitFloor[T Unsigned](value T) T {
	if value == 0 {
		return 0
	}
	return T(1) << (BitWidth(value) - 1)
}

// BitCeil returns the smallest power of two no smaller than value.
// It returns 1 for values below 2. For example, BitCeil(uint8(5)) is 8.
//
// The result is unspecified when the answer would exceed the largest power
// of two representable in T; callers that cannot rule that out must range
// check value first.
func BitCeil[T Unsigned](value T) T {
	if value < 2 {
		return 1
	}
	return T(1) << BitWidth(value-1)
}
