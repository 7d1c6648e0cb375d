package bitwise

import (
	"os"
	"strconv"
)

// Impl identifies the implementation backing the counting primitives.
type Impl int

//go:generate go tool stringer -type=Impl -trimprefix=Impl

const (
	// ImplGeneric indicates the portable bisection implementations.
	ImplGeneric Impl = iota

	// ImplIntrinsic indicates math/bits-backed implementations, which the
	// compiler lowers to the architecture's count instructions.
	ImplIntrinsic
)

// currentImpl is the implementation selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentImpl Impl

// currentName is the human-readable name of the selected implementation.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentImpl returns the implementation backing the counting primitives.
func CurrentImpl() Impl {
	return currentImpl
}

// CurrentName returns a human-readable name for the current implementation.
// For example: "tzcnt+lzcnt+popcnt", "clz+rbit+cnt", "bisection".
func CurrentName() string {
	return currentName
}

// NoIntrinsicsEnv checks if the BITWISE_NO_INTRINSICS environment variable
// is set. When set, the counting primitives keep the portable bisection
// implementations regardless of architecture. This is useful for testing
// and debugging.
func NoIntrinsicsEnv() bool {
	val := os.Getenv("BITWISE_NO_INTRINSICS")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
