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

import (
	"math/bits"
	"unsafe"
)

// ReverseBits returns value with its bit order reversed: for a width of N,
// bit i of the input becomes bit N-1-i of the result. Reversing twice
// returns the original value.
func ReverseBits[T Unsigned](value T) T {
	switch unsafe.Sizeof(value) {
	case 1:
		return T(bits.Reverse8(uint8(value)))
	case 2:
		return T(bits.Reverse16(uint16(value)))
	case 4:
		return T(bits.Reverse32(uint32(value)))
	default:
		return T(bits.Reverse64(uint64(value)))
	}
}
