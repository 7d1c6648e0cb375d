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

// The rotations use the double-shift-and-or form, which compilers pattern
// match to a native rotate instruction, so they need no dispatch registry.
// The amount is reduced modulo the width first; the zero short-circuit keeps
// the complementary shift below the full width.

// RotateLeft returns value rotated left by rotate bit positions. The amount
// is reduced modulo the bit width of T and may be negative, which rotates
// right instead. Rotating by 0 or by a multiple of the width returns value
// unchanged.
func RotateLeft[T Unsigned](value T, rotate int) T {
	n := BitSize[T]()
	rotate %= n
	if rotate == 0 {
		return value
	}
	if rotate < 0 {
		return RotateRight(value, -rotate)
	}
	return value<<rotate | value>>(n-rotate)
}

// RotateRight returns value rotated right by rotate bit positions. The
// amount is reduced modulo the bit width of T and may be negative, which
// rotates left instead. Rotating by 0 or by a multiple of the width returns
// value unchanged.
func RotateRight[T Unsigned](value T, rotate int) T {
	n := BitSize[T]()
	rotate %= n
	if rotate == 0 {
		return value
	}
	if rotate < 0 {
		return RotateLeft(value, -rotate)
	}
	return value>>rotate | value<<(n-rotate)
}
