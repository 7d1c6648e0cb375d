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

// First-bit position helpers. Positions are 1-based from the scanned end,
// with 0 as the "no such bit" sentinel, so a found position is always
// distinguishable from a miss.

// FirstLeadingZero returns the 1-based position, counted from the most
// significant bit, of the first zero bit of value. Position 1 is the most
// significant bit itself. It returns 0 when value has no zero bit.
func FirstLeadingZero[T Unsigned](value T) int {
	if value == MaxValue[T]() {
		return 0
	}
	return LeadingOneCount(value) + 1
}

// FirstLeadingOne returns the 1-based position, counted from the most
// significant bit, of the first set bit of value. It returns 0 for 0.
func FirstLeadingOne[T Unsigned](value T) int {
	return FirstLeadingZero(^value)
}

// FirstTrailingZero returns the 1-based position, counted from the least
// significant bit, of the first zero bit of value. It returns 0 when value
// has no zero bit.
func FirstTrailingZero[T Unsigned](value T) int {
	if value == MaxValue[T]() {
		return 0
	}
	return TrailingOneCount(value) + 1
}

// FirstTrailingOne returns the 1-based position, counted from the least
// significant bit, of the first set bit of value. It returns 0 for 0.
func FirstTrailingOne[T Unsigned](value T) int {
	if value == 0 {
		return 0
	}
	return TrailingZeroCount(value) + 1
}
