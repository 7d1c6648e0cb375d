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

// Command bitinfo prints the full primitive table for unsigned values.
//
// Usage:
//
//	bitinfo 5 0b1000 0xFF0FFF00
//	bitinfo -width 8 -rot 3 0x96
//
// Values accept decimal, 0b, 0o and 0x prefixes and must fit the selected
// width. The header line names the implementation the dispatch selected,
// which BITWISE_NO_INTRINSICS=1 pins to the portable one.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ajroetker/go-bitwise/bitwise"
)

var (
	width  = flag.Int("width", 64, "operand width in bits (8, 16, 32, or 64)")
	rotate = flag.Int("rot", 0, "also print the value rotated left by this many positions")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one value argument is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	switch *width {
	case 8, 16, 32, 64:
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported width %d (want 8, 16, 32, or 64)\n", *width)
		os.Exit(1)
	}

	fmt.Printf("implementation: %s (%s)\n", bitwise.CurrentImpl(), bitwise.CurrentName())

	for _, arg := range flag.Args() {
		value, err := strconv.ParseUint(arg, 0, *width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		switch *width {
		case 8:
			printInfo(uint8(value), *rotate)
		case 16:
			printInfo(uint16(value), *rotate)
		case 32:
			printInfo(uint32(value), *rotate)
		default:
			printInfo(value, *rotate)
		}
	}
}

func printInfo[T bitwise.Unsigned](value T, rotate int) {
	n := bitwise.BitSize[T]()
	digits := n / 4

	fmt.Printf("\n0x%0*X = 0b%0*b (uint%d)\n", digits, uint64(value), n, uint64(value), n)
	fmt.Printf("  bit width           %-6d has single bit      %v\n",
		bitwise.BitWidth(value), bitwise.HasSingleBit(value))
	fmt.Printf("  trailing zeros      %-6d trailing ones       %d\n",
		bitwise.TrailingZeroCount(value), bitwise.TrailingOneCount(value))
	fmt.Printf("  leading zeros       %-6d leading ones        %d\n",
		bitwise.LeadingZeroCount(value), bitwise.LeadingOneCount(value))
	fmt.Printf("  pop count           %-6d zero count          %d\n",
		bitwise.PopCount(value), bitwise.ZeroCount(value))
	fmt.Printf("  bit floor           %#-6x bit ceil            %#x\n",
		uint64(bitwise.BitFloor(value)), uint64(bitwise.BitCeil(value)))
	fmt.Printf("  first leading zero  %-6d first leading one   %d\n",
		bitwise.FirstLeadingZero(value), bitwise.FirstLeadingOne(value))
	fmt.Printf("  first trailing zero %-6d first trailing one  %d\n",
		bitwise.FirstTrailingZero(value), bitwise.FirstTrailingOne(value))
	fmt.Printf("  reverse bits        %#x\n", uint64(bitwise.ReverseBits(value)))
	if rotate != 0 {
		fmt.Printf("  rotl by %-4d        %#x\n", rotate, uint64(bitwise.RotateLeft(value, rotate)))
	}
}
