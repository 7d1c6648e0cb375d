package bitwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitCast(t *testing.T) {
	t.Run("float32_to_uint32", func(t *testing.T) {
		for _, f := range []float32{0, 1, -1, 0.5, math.Pi, float32(math.Inf(1)), math.MaxFloat32} {
			require.Equalf(t, math.Float32bits(f), BitCast[uint32](f), "BitCast[uint32](%g)", f)
		}
	})

	t.Run("uint32_to_float32", func(t *testing.T) {
		for _, u := range []uint32{0, 0x3F800000, 0xBF800000, 0x7F800000, 0x12345678} {
			require.Equalf(t, math.Float32frombits(u), BitCast[float32](u), "BitCast[float32](%#x)", u)
		}
	})

	t.Run("float64_round_trip", func(t *testing.T) {
		for _, f := range []float64{0, 1, -2.75, math.Pi, math.SmallestNonzeroFloat64} {
			bits := BitCast[uint64](f)
			require.Equal(t, math.Float64bits(f), bits)
			require.Equal(t, f, BitCast[float64](bits))
		}
	})

	t.Run("signed_unsigned", func(t *testing.T) {
		require.Equal(t, uint8(0xFF), BitCast[uint8](int8(-1)))
		require.Equal(t, int16(-32768), BitCast[int16](uint16(0x8000)))
		require.Equal(t, uint64(math.MaxUint64), BitCast[uint64](int64(-1)))
	})

	t.Run("identity", func(t *testing.T) {
		require.Equal(t, uint32(0xDEADBEEF), BitCast[uint32](uint32(0xDEADBEEF)))
	})

	t.Run("size_mismatch_panics", func(t *testing.T) {
		assert.PanicsWithValue(t,
			"bitwise: BitCast from 4-byte source to 8-byte destination",
			func() { BitCast[uint64](uint32(1)) })
		assert.PanicsWithValue(t,
			"bitwise: BitCast from 8-byte source to 4-byte destination",
			func() { BitCast[float32](uint64(1)) })
	})
}

func TestBitCastOrConvert(t *testing.T) {
	t.Run("equal_size_reinterprets", func(t *testing.T) {
		require.Equal(t, math.Float32bits(1.5), BitCastOrConvert[uint32](float32(1.5)))
		require.Equal(t, uint8(0x80), BitCastOrConvert[uint8](int8(math.MinInt8)))
	})

	t.Run("different_size_converts", func(t *testing.T) {
		// Value conversion, not reinterpretation: the numeric value is
		// preserved (or truncated toward zero for float sources).
		require.Equal(t, uint64(200), BitCastOrConvert[uint64](uint8(200)))
		require.Equal(t, uint16(0x1234), BitCastOrConvert[uint16](uint64(0x1234)))
		require.Equal(t, uint64(3), BitCastOrConvert[uint64](float32(3.75)))
		require.Equal(t, float64(7), BitCastOrConvert[float64](uint16(7)))
	})

	t.Run("never_panics_across_sizes", func(t *testing.T) {
		assert.NotPanics(t, func() { BitCastOrConvert[uint8](uint64(math.MaxUint64)) })
	})
}
