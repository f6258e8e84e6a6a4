// Package stegano hides short text messages inside raster images so that
// the carrier survives lossy re-encoding (JPEG down to roughly quality 60,
// WebP to roughly 80) and the message can still be recovered.
//
// The message never appears in the image, even obfuscated: a book cipher
// maps each character to a position in a reference text both parties
// share, and only those positions travel. The position list is
// varint-packed, zlib-compressed, protected by a Reed-Solomon outer code
// and a 7x bit-repetition inner code, and embedded by quantization index
// modulation of one mid-frequency DCT coefficient per 8x8 luminance
// block. A 24-bit header in the first 24 blocks carries the codeword bit
// length.
//
// # Basic Usage
//
// Hiding and recovering a message:
//
//	import "github.com/arloliu/stegano"
//
//	carrier, _ := imageio.Load("beach.png")
//	reference, _ := source.Load("moby-dick.txt")
//
//	marked, err := stegano.Encode(carrier, "Meet at noon", reference)
//	if err != nil {
//	    return err
//	}
//	_ = imageio.SavePNG("beach_marked.png", marked)
//
//	// ...possibly after the image was re-saved as JPEG by a third party...
//	msg, err := stegano.Decode(marked, reference)
//	// msg == "Meet at noon"
//
// Both parties must hold byte-identical reference text; compare
// source.Fingerprint values when in doubt. The marked image must be
// stored losslessly by the sender (imageio.SavePNG); surviving lossy
// re-encoding is the receiver's problem, and the one this codec solves.
//
// # Package Structure
//
// This package provides top-level wrappers around the stego package,
// which orchestrates the pipeline stages. The stages live in their own
// packages (book, encoding, compress, reedsolomon, dct, watermark) for
// direct use and testing; the wire-format constants are pinned in format.
package stegano

import (
	"github.com/arloliu/stegano/pixel"
	"github.com/arloliu/stegano/stego"
)

// Encode hides plaintext in a copy of img, addressing characters through
// the shared reference text, and returns the marked copy. The input image
// is never mutated.
//
// Returns:
//   - errs.ErrCharacterNotInReference if a plaintext character does not
//     occur in reference
//   - errs.ErrPayloadTooLarge if the compressed positions exceed one
//     Reed-Solomon codeword
//   - errs.ErrImageTooSmall if the image has too few 8x8 blocks
func Encode(img *pixel.Image, plaintext, reference string) (*pixel.Image, error) {
	return stego.Encode(img, plaintext, reference)
}

// Decode recovers the plaintext hidden in img using the shared reference
// text. A failure returns no partial plaintext.
//
// Returns errs.ErrInvalidHeader, errs.ErrUncorrectableErrors,
// errs.ErrCompressionFailed, errs.ErrTruncatedVarint,
// errs.ErrTrailingGarbage or errs.ErrInvalidPosition depending on where
// the carrier proves damaged.
func Decode(img *pixel.Image, reference string) (string, error) {
	return stego.Decode(img, reference)
}
