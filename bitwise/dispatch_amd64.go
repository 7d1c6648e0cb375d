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

//go:build amd64

package bitwise

import "golang.org/x/sys/cpu"

func init() {
	// Check if intrinsics are disabled via environment variable
	if NoIntrinsicsEnv() {
		currentImpl = ImplGeneric
		currentName = "bisection"
		return
	}

	installIntrinsicCounters()
	currentImpl = ImplIntrinsic

	// The math/bits lowering is correct on every amd64 CPU; the probe only
	// names the count instructions this one executes.
	// LZCNT/TZCNT detection: use BMI1 as a proxy (LZCNT ships alongside BMI1
	// on Intel Haswell+ and on all BMI1-capable AMD CPUs).
	switch {
	case cpu.X86.HasBMI1 && cpu.X86.HasPOPCNT:
		currentName = "tzcnt+lzcnt+popcnt"
	case cpu.X86.HasPOPCNT:
		currentName = "bsf+bsr+popcnt"
	default:
		currentName = "bsf+bsr"
	}
}
