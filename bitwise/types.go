// Package bitwise provides bit-manipulation primitives for unsigned
// fixed-width integers with per-width intrinsic dispatch.
//
// Every counting primitive has a portable bisection implementation that
// works at any width, and a specialization backed by the math/bits compiler
// intrinsics (TZCNT/BSF, LZCNT/BSR, POPCNT on amd64; CLZ, RBIT+CLZ, CNT on
// arm64). The dispatch files install the specializations at package init;
// both paths return identical results for every input.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bitwise/bitwise"
//
//	bitwise.TrailingZeroCount(uint32(0b1000)) // 3
//	bitwise.BitWidth(uint16(5))               // 3
//	bitwise.BitCeil(uint8(5))                 // 8
package bitwise

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Unsigned is a constraint for unsigned integer types. It admits every
// fixed-width unsigned type, uint, uintptr, and types derived from them.
type Unsigned interface {
	constraints.Unsigned
}

// Numeric is a constraint for fixed-layout numeric types, the operands
// accepted by BitCast and BitCastOrConvert.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// BitSize returns the number of bits in a value of type T.
func BitSize[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxValue returns the largest value representable in T, i.e. the value with
// every bit set.
func MaxValue[T Unsigned]() T {
	return ^T(0)
}
