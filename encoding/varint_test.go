package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stegano/errs"
)

func TestZigzagKnownValues(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		u    uint64
	}{
		{"zero", 0, 0},
		{"minus one", -1, 1},
		{"one", 1, 2},
		{"minus two", -2, 3},
		{"two", 2, 4},
		{"max int64", math.MaxInt64, math.MaxUint64 - 1},
		{"min int64", math.MinInt64, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.u, Zigzag(tt.v))
			assert.Equal(t, tt.v, Unzigzag(tt.u))
		})
	}
}

func TestZigzagBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		v := int64(int32(rng.Uint32())) // full 32-bit signed range
		require.Equal(t, v, Unzigzag(Zigzag(v)))
	}
	for i := 0; i < 10000; i++ {
		v := int64(rng.Uint64())
		require.Equal(t, v, Unzigzag(Zigzag(v)))
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, math.MaxUint64}
	for _, u := range values {
		buf := AppendVarint(nil, u)
		got, n, err := Uvarint(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, u, got)
	}
}

func TestVarintSingleByteBoundary(t *testing.T) {
	require.Equal(t, []byte{0x7f}, AppendVarint(nil, 127))
	require.Equal(t, []byte{0x80, 0x01}, AppendVarint(nil, 128))
	require.Equal(t, []byte{0xac, 0x02}, AppendVarint(nil, 300))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
	}{
		{"empty", []int64{}},
		{"single", []int64{42}},
		{"mixed signs", []int64{3, 10, 1, -7, 0, -1}},
		{"extremes", []int64{math.MaxInt64, math.MinInt64, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := Pack(tt.values)
			got, err := Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, len(tt.values), len(got))
			for i := range tt.values {
				assert.Equal(t, tt.values[i], got[i])
			}
		})
	}
}

func TestPackUnpackRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		values := make([]int64, rng.Intn(64))
		for j := range values {
			values[j] = rng.Int63n(1<<20) - 1<<19
		}
		got, err := Unpack(Pack(values))
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestUnpackTruncated(t *testing.T) {
	packed := Pack([]int64{1 << 30})
	_, err := Unpack(packed[:len(packed)-1])
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)

	_, err = Unpack([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)
}

func TestUnpackOverlong(t *testing.T) {
	// Eleven continuation-style bytes cannot encode any 64-bit value.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := Unpack(data)
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)

	// Ten bytes whose final group overflows the 64th bit.
	data = []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	_, err = Unpack(data)
	require.ErrorIs(t, err, errs.ErrTrailingGarbage)
}
