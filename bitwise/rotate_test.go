package bitwise

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotateLeft(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		tests := []struct {
			name   string
			input  uint8
			rotate int
			want   uint8
		}{
			{name: "by_zero", input: 0xAB, rotate: 0, want: 0xAB},
			{name: "by_one", input: 0b0001, rotate: 1, want: 0b0010},
			{name: "wrap_msb", input: 0x80, rotate: 1, want: 0x01},
			{name: "by_four", input: 0xAB, rotate: 4, want: 0xBA},
			{name: "full_width", input: 0x12, rotate: 8, want: 0x12},
			{name: "beyond_width", input: 0x12, rotate: 9, want: 0x24},
			{name: "negative", input: 0b0010, rotate: -1, want: 0b0001},
			{name: "negative_beyond_width", input: 0x24, rotate: -9, want: 0x12},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := RotateLeft(tt.input, tt.rotate); got != tt.want {
					t.Errorf("got 0x%02X, want 0x%02X", got, tt.want)
				}
			})
		}
	})

	t.Run("uint32", func(t *testing.T) {
		tests := []struct {
			name   string
			input  uint32
			rotate int
			want   uint32
		}{
			{name: "by_eight", input: 0x12345678, rotate: 8, want: 0x34567812},
			{name: "by_sixteen", input: 0x12345678, rotate: 16, want: 0x56781234},
			{name: "full_width", input: 0x12345678, rotate: 32, want: 0x12345678},
			{name: "negative_eight", input: 0x12345678, rotate: -8, want: 0x78123456},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := RotateLeft(tt.input, tt.rotate); got != tt.want {
					t.Errorf("got 0x%08X, want 0x%08X", got, tt.want)
				}
			})
		}
	})
}

func TestRotateRight(t *testing.T) {
	tests := []struct {
		name   string
		input  uint32
		rotate int
		want   uint32
	}{
		{name: "by_zero", input: 0x12345678, rotate: 0, want: 0x12345678},
		{name: "by_eight", input: 0x12345678, rotate: 8, want: 0x78123456},
		{name: "full_width", input: 0x12345678, rotate: 32, want: 0x12345678},
		{name: "negative_is_left", input: 0x12345678, rotate: -8, want: 0x34567812},
		{name: "wrap_lsb", input: 0x00000001, rotate: 1, want: 0x80000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateRight(tt.input, tt.rotate); got != tt.want {
				t.Errorf("got 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

// TestRotationRoundTrip checks that opposite rotations cancel for every
// amount in a window wider than two full turns, including the negative
// side, and that rotation is periodic in the width.
func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))

	t.Run("uint8", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			value := uint8(rng.Uint32())
			for r := -17; r <= 17; r++ {
				require.Equalf(t, value, RotateRight(RotateLeft(value, r), r),
					"round trip of %#02x by %d", value, r)
				require.Equalf(t, value, RotateLeft(RotateRight(value, r), r),
					"reverse round trip of %#02x by %d", value, r)
			}
			require.Equal(t, value, RotateLeft(value, 0))
			require.Equal(t, value, RotateLeft(value, 8))
			require.Equal(t, RotateLeft(value, 3), RotateLeft(value, 3+8))
		}
	})

	t.Run("uint64", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			value := rng.Uint64()
			for r := -130; r <= 130; r++ {
				require.Equalf(t, value, RotateRight(RotateLeft(value, r), r),
					"round trip of %#x by %d", value, r)
			}
			require.Equal(t, value, RotateLeft(value, 64))
			require.Equal(t, RotateLeft(value, 5), RotateRight(value, 64-5))
		}
	})
}

// TestRotationPreservesPopCount pins that rotation permutes bits without
// creating or destroying any.
func TestRotationPreservesPopCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 256; i++ {
		value := rng.Uint32()
		r := rng.IntN(130) - 65
		require.Equal(t, PopCount(value), PopCount(RotateLeft(value, r)))
	}
}

func BenchmarkRotateLeft_U64(b *testing.B) {
	var s uint64
	for i := 0; i < b.N; i++ {
		s += RotateLeft(benchWords64[i&7], 13)
	}
	benchSink = int(s)
}
