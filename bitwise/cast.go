package bitwise

import (
	"fmt"
	"unsafe"
)

// This file provides bit-exact type reinterpretation between fixed-layout
// numeric types. The reinterpretation is a pointer cast, never a numeric
// conversion, so the destination carries the source's bit pattern untouched.

// BitCast reinterprets the bits of from as a value of type To. The bit
// pattern of the result is byte-for-byte identical to from's.
//
// To and From must have the same size; Go cannot state that constraint
// across two type parameters, so BitCast panics on a size mismatch instead
// of converting.
func BitCast[To, From Numeric](from From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(from) {
		panic(fmt.Sprintf("bitwise: BitCast from %d-byte source to %d-byte destination",
			unsafe.Sizeof(from), unsafe.Sizeof(to)))
	}
	return *(*To)(unsafe.Pointer(&from))
}

// BitCastOrConvert returns BitCast[To](from) when To and From have the same
// size, and the ordinary value conversion To(from) otherwise. It never
// panics.
func BitCastOrConvert[To, From Numeric](from From) To {
	var to To
	if unsafe.Sizeof(to) == unsafe.Sizeof(from) {
		return BitCast[To](from)
	}
	return To(from)
}
