package watermark

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stegano/errs"
	"github.com/arloliu/stegano/pixel"
)

func randomImage(width, height int, seed int64) *pixel.Image {
	rng := rand.New(rand.NewSource(seed))
	img := pixel.New(width, height)
	for i := range img.Pix {
		// Stay away from the sample extremes so clamping cannot eat into
		// the modulation.
		img.Pix[i] = uint8(32 + rng.Intn(192))
	}

	return img
}

func randomBits(n int, seed int64) []uint8 {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = uint8(rng.Intn(2))
	}

	return bits
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		capacity      int
	}{
		{"exact blocks", 64, 64, 64},
		{"partial blocks ignored", 70, 65, 64},
		{"single block", 8, 8, 1},
		{"too narrow", 7, 64, 0},
		{"hd", 1280, 720, 14400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.capacity, Capacity(tt.width, tt.height))
		})
	}
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	img := randomImage(256, 128, 1)
	bits := randomBits(Capacity(256, 128), 2)

	marked, err := EmbedBits(img, bits)
	require.NoError(t, err)

	got := ExtractBits(marked)
	require.Equal(t, len(bits), len(got))
	for i := range bits {
		require.Equal(t, bits[i], got[i], "bit %d", i)
	}
}

func TestEmbedPartialFill(t *testing.T) {
	img := randomImage(128, 128, 3)
	bits := randomBits(10, 4)

	marked, err := EmbedBits(img, bits)
	require.NoError(t, err)

	got := ExtractBits(marked)
	require.Equal(t, Capacity(128, 128), len(got))
	for i := range bits {
		assert.Equal(t, bits[i], got[i], "bit %d", i)
	}
}

func TestEmbedDoesNotMutateInput(t *testing.T) {
	img := randomImage(64, 64, 5)
	orig := img.Clone()

	_, err := EmbedBits(img, randomBits(Capacity(64, 64), 6))
	require.NoError(t, err)
	assert.Equal(t, orig.Pix, img.Pix)
}

func TestEmbedCapacityError(t *testing.T) {
	img := randomImage(32, 32, 7) // 16 blocks

	_, err := EmbedBits(img, randomBits(17, 8))
	require.ErrorIs(t, err, errs.ErrImageTooSmall)
}

func TestEmbedLeavesUntouchedBlocksIdentical(t *testing.T) {
	img := randomImage(64, 64, 9)

	marked, err := EmbedBits(img, []uint8{1, 0, 1})
	require.NoError(t, err)

	// Only the first three blocks (top-left 24x8 strip) may differ.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if y < 8 && x < 24 {
				continue
			}
			r0, g0, b0 := img.RGB(x, y)
			r1, g1, b1 := marked.RGB(x, y)
			require.Equal(t, [3]uint8{r0, g0, b0}, [3]uint8{r1, g1, b1}, "pixel (%d,%d)", x, y)
		}
	}
}

func TestExtractSurvivesSmallNoise(t *testing.T) {
	img := randomImage(256, 256, 10)
	bits := randomBits(Capacity(256, 256), 11)

	marked, err := EmbedBits(img, bits)
	require.NoError(t, err)

	// Mild uniform pixel noise, well inside the QIM decision margin.
	rng := rand.New(rand.NewSource(12))
	for i := range marked.Pix {
		delta := rng.Intn(5) - 2
		v := int(marked.Pix[i]) + delta
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		marked.Pix[i] = uint8(v)
	}

	got := ExtractBits(marked)
	for i := range bits {
		require.Equal(t, bits[i], got[i], "bit %d flipped by small noise", i)
	}
}
