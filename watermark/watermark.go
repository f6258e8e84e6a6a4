// Package watermark embeds and extracts raw bit sequences in the
// mid-frequency DCT coefficients of an image's 8x8 luminance blocks using
// quantization index modulation.
//
// One block carries one bit. Blocks tile the image from (0,0) in row-major
// order; partial blocks at the right and bottom edges carry nothing. The
// package knows nothing about headers, repetition or error correction; it
// moves exactly the bits it is given, in order. Framing lives in the
// stego package.
package watermark

import (
	"fmt"
	"math"

	"github.com/arloliu/stegano/dct"
	"github.com/arloliu/stegano/errs"
	"github.com/arloliu/stegano/format"
	"github.com/arloliu/stegano/pixel"
)

// Capacity returns the number of payload bits an image of the given
// dimensions can carry: one per complete 8x8 block.
func Capacity(width, height int) int {
	return (width / format.BlockSize) * (height / format.BlockSize)
}

// EmbedBits clones img and writes bits into consecutive blocks of the
// clone, one bit per block. Blocks beyond len(bits) are left untouched.
//
// Returns ErrImageTooSmall if the image has fewer complete blocks than
// bits.
func EmbedBits(img *pixel.Image, bits []uint8) (*pixel.Image, error) {
	capacity := Capacity(img.Width, img.Height)
	if len(bits) > capacity {
		return nil, fmt.Errorf("%w: need %d blocks, image %dx%d has %d",
			errs.ErrImageTooSmall, len(bits), img.Width, img.Height, capacity)
	}

	out := img.Clone()
	blocksPerRow := img.Width / format.BlockSize

	for i, bit := range bits {
		bx := (i % blocksPerRow) * format.BlockSize
		by := (i / blocksPerRow) * format.BlockSize
		embedBlock(out, bx, by, bit)
	}

	return out, nil
}

// ExtractBits reads one bit from every complete block of img, in block
// order. The caller decides how many of the leading bits are meaningful.
func ExtractBits(img *pixel.Image) []uint8 {
	capacity := Capacity(img.Width, img.Height)
	blocksPerRow := img.Width / format.BlockSize

	bits := make([]uint8, capacity)
	for i := range bits {
		bx := (i % blocksPerRow) * format.BlockSize
		by := (i / blocksPerRow) * format.BlockSize
		bits[i] = extractBlock(img, bx, by)
	}

	return bits
}

// embedBlock modulates the watermark coefficient of the block whose
// top-left pixel is (bx, by) to carry bit, leaving chrominance untouched.
func embedBlock(img *pixel.Image, bx, by int, bit uint8) {
	var y dct.Block
	var cb, cr [dct.Size * dct.Size]float64

	for r := 0; r < dct.Size; r++ {
		for c := 0; c < dct.Size; c++ {
			red, green, blue := img.RGB(bx+c, by+r)
			y[r*dct.Size+c], cb[r*dct.Size+c], cr[r*dct.Size+c] = pixel.RGBToYCbCr(red, green, blue)
		}
	}

	y.Forward()
	y[format.CoefRow*dct.Size+format.CoefCol] = modulate(y[format.CoefRow*dct.Size+format.CoefCol], bit)
	y.Inverse()

	for r := 0; r < dct.Size; r++ {
		for c := 0; c < dct.Size; c++ {
			i := r*dct.Size + c
			red, green, blue := pixel.YCbCrToRGB(y[i], cb[i], cr[i])
			img.SetRGB(bx+c, by+r, red, green, blue)
		}
	}
}

// extractBlock recovers the bit carried by the block at (bx, by).
func extractBlock(img *pixel.Image, bx, by int) uint8 {
	var y dct.Block

	for r := 0; r < dct.Size; r++ {
		for c := 0; c < dct.Size; c++ {
			red, green, blue := img.RGB(bx+c, by+r)
			luma, _, _ := pixel.RGBToYCbCr(red, green, blue)
			y[r*dct.Size+c] = luma
		}
	}

	y.Forward()

	return slice(y[format.CoefRow*dct.Size+format.CoefCol])
}

// modulate snaps the coefficient to its quantization lattice point and
// displaces it by +/- Alpha*Strength to signal the bit.
func modulate(coef float64, bit uint8) float64 {
	quantized := nearestStep(coef)
	if bit == 1 {
		return quantized + format.Alpha*format.Strength
	}

	return quantized - format.Alpha*format.Strength
}

// slice is the QIM slicer: the bit is the side of the nearest lattice
// point the received coefficient falls on.
func slice(coef float64) uint8 {
	if coef >= nearestStep(coef) {
		return 1
	}

	return 0
}

// nearestStep rounds the coefficient to the nearest multiple of Strength.
// math.Round rounds half away from zero on both ends, so the embedder and
// the slicer agree on the lattice.
func nearestStep(coef float64) float64 {
	return math.Round(coef/format.Strength) * format.Strength
}
