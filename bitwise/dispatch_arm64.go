//go:build arm64

package bitwise

import "golang.org/x/sys/cpu"

func init() {
	// Check for BITWISE_NO_INTRINSICS environment variable first
	if NoIntrinsicsEnv() {
		currentImpl = ImplGeneric
		currentName = "bisection"
		return
	}

	installIntrinsicCounters()
	currentImpl = ImplIntrinsic

	// CLZ and RBIT are ARMv8-A base instructions, always present on arm64.
	// The vector CNT behind OnesCount needs ASIMD; cpu.ARM64.HasASIMD is
	// always true on ARMv8+, checked for consistency with future probes.
	if cpu.ARM64.HasASIMD {
		currentName = "clz+rbit+cnt"
	} else {
		currentName = "clz+rbit"
	}
}
