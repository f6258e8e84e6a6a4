// Package imageio converts carrier images between files and the RGB
// matrix the codec operates on.
//
// Decoding accepts PNG, JPEG, GIF, WebP and BMP. Saving always produces
// PNG: the embedded watermark survives lossy re-encoding by others, but
// the encoder itself must hand over a lossless carrier.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Carrier formats beyond PNG register their decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/arloliu/stegano/pixel"
)

// Decode reads any supported raster format into an RGB matrix.
func Decode(r io.Reader) (*pixel.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return pixel.FromImage(src), nil
}

// Load reads the image file at path.
func Load(path string) (*pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// EncodePNG writes the image to w as PNG.
func EncodePNG(w io.Writer, img *pixel.Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}

// SavePNG writes the image to the file at path as PNG.
func SavePNG(path string, img *pixel.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
