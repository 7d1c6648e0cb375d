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

//go:build amd64 || arm64

package bitwise

import "math/bits"

// math/bits-backed counter specializations. The compiler lowers these calls
// to TZCNT/BSF, LZCNT/BSR and POPCNT on amd64, and to RBIT+CLZ, CLZ and CNT
// on arm64. The zero check stays in front of each count delegation: the
// underlying instructions historically leave the zero input undefined, and
// the counters' contract pins that case to the bit width.

func intrinsicTrailingZeros8(value uint8) int {
	if value == 0 {
		return 8
	}
	return bits.TrailingZeros8(value)
}

func intrinsicTrailingZeros16(value uint16) int {
	if value == 0 {
		return 16
	}
	return bits.TrailingZeros16(value)
}

func intrinsicTrailingZeros32(value uint32) int {
	if value == 0 {
		return 32
	}
	return bits.TrailingZeros32(value)
}

func intrinsicTrailingZeros64(value uint64) int {
	if value == 0 {
		return 64
	}
	return bits.TrailingZeros64(value)
}

func intrinsicLeadingZeros8(value uint8) int {
	if value == 0 {
		return 8
	}
	return bits.LeadingZeros8(value)
}

func intrinsicLeadingZeros16(value uint16) int {
	if value == 0 {
		return 16
	}
	return bits.LeadingZeros16(value)
}

func intrinsicLeadingZeros32(value uint32) int {
	if value == 0 {
		return 32
	}
	return bits.LeadingZeros32(value)
}

func intrinsicLeadingZeros64(value uint64) int {
	if value == 0 {
		return 64
	}
	return bits.LeadingZeros64(value)
}

// installIntrinsicCounters points every registry entry at its math/bits
// form. Called from the architecture init() unless NoIntrinsicsEnv is set.
func installIntrinsicCounters() {
	trailingZeros8 = intrinsicTrailingZeros8
	trailingZeros16 = intrinsicTrailingZeros16
	trailingZeros32 = intrinsicTrailingZeros32
	trailingZeros64 = intrinsicTrailingZeros64

	leadingZeros8 = intrinsicLeadingZeros8
	leadingZeros16 = intrinsicLeadingZeros16
	leadingZeros32 = intrinsicLeadingZeros32
	leadingZeros64 = intrinsicLeadingZeros64

	// OnesCount is total over its domain, so the population counts need no
	// zero guard wrapper.
	popCount8 = bits.OnesCount8
	popCount16 = bits.OnesCount16
	popCount32 = bits.OnesCount32
	popCount64 = bits.OnesCount64
}
