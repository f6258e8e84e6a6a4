// Package pixel provides the RGB8 raster matrix the watermark operates on,
// plus the JPEG-convention YCbCr conversions between RGB samples and the
// luminance plane carrying the payload.
package pixel

import (
	"image"
	"image/color"
	"math"
)

// Image is an H x W matrix of 8-bit RGB samples, stored row-major with
// three interleaved bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width * Height * 3
}

// New creates a zeroed Image of the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	dup := &Image{
		Width:  im.Width,
		Height: im.Height,
		Pix:    make([]uint8, len(im.Pix)),
	}
	copy(dup.Pix, im.Pix)

	return dup
}

// RGB returns the sample triple at (x, y). No bounds checking; callers
// iterate within the image dimensions.
func (im *Image) RGB(x, y int) (r, g, b uint8) {
	i := (y*im.Width + x) * 3
	return im.Pix[i], im.Pix[i+1], im.Pix[i+2]
}

// SetRGB stores the sample triple at (x, y).
func (im *Image) SetRGB(x, y int, r, g, b uint8) {
	i := (y*im.Width + x) * 3
	im.Pix[i] = r
	im.Pix[i+1] = g
	im.Pix[i+2] = b
}

// FromImage converts any stdlib image to an RGB8 matrix, flattening alpha
// and palettes through the color model.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	im := New(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			im.Pix[i] = c.R
			im.Pix[i+1] = c.G
			im.Pix[i+2] = c.B
			i += 3
		}
	}

	return im
}

// ToRGBA converts the matrix back to a stdlib *image.RGBA with full
// opacity.
func (im *Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b := im.RGB(x, y)
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}

	return dst
}

// RGBToYCbCr converts one RGB sample to the JPEG full-range YCbCr triple.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr float64) {
	rf, gf, bf := float64(r), float64(g), float64(b)

	y = 0.299*rf + 0.587*gf + 0.114*bf
	cb = 128 - 0.168736*rf - 0.331264*gf + 0.5*bf
	cr = 128 + 0.5*rf - 0.418688*gf - 0.081312*bf

	return y, cb, cr
}

// YCbCrToRGB converts a JPEG full-range YCbCr triple back to RGB samples,
// rounding and clamping each channel to [0, 255].
func YCbCrToRGB(y, cb, cr float64) (r, g, b uint8) {
	r = clamp8(y + 1.402*(cr-128))
	g = clamp8(y - 0.344136*(cb-128) - 0.714136*(cr-128))
	b = clamp8(y + 1.772*(cb-128))

	return r, g, b
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}
