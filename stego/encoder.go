// Package stego orchestrates the full hiding pipeline: book-cipher
// positions, varint packing, zlib compression, Reed-Solomon parity, bit
// repetition, and the QIM watermark with its bit-length header.
//
// The on-image layout, block by block: bits 0..23 are the 24-bit
// big-endian codeword bit length (no repetition, no parity: its value is
// needed before any ECC can be sized), followed by the repetition-coded
// codeword, MSB-first over bytes. All parameters are compile-time
// constants in the format package.
package stego

import (
	"fmt"

	"github.com/arloliu/stegano/book"
	"github.com/arloliu/stegano/compress"
	"github.com/arloliu/stegano/encoding"
	"github.com/arloliu/stegano/errs"
	"github.com/arloliu/stegano/format"
	"github.com/arloliu/stegano/pixel"
	"github.com/arloliu/stegano/reedsolomon"
	"github.com/arloliu/stegano/watermark"
)

// Encode hides plaintext in a copy of img using reference as the shared
// book-cipher text, and returns the marked copy. The input image is never
// mutated.
//
// Returns ErrCharacterNotInReference, ErrPayloadTooLarge or
// ErrImageTooSmall as described in the errs package.
func Encode(img *pixel.Image, plaintext, reference string) (*pixel.Image, error) {
	positions, err := book.NewEncoder(reference).Encode(plaintext)
	if err != nil {
		return nil, err
	}

	payload, err := compress.NewZlibCompressor().Compress(encoding.Pack(positions))
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	if len(payload) > format.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d compressed bytes, limit %d",
			errs.ErrPayloadTooLarge, len(payload), format.MaxPayloadSize)
	}

	codeword, err := reedsolomon.NewEncoder(reedsolomon.Field256).EncodeBytes(payload, format.ParitySymbols)
	if err != nil {
		return nil, fmt.Errorf("adding parity: %w", err)
	}

	codewordBits := expandBits(codeword)

	bits := make([]uint8, 0, format.HeaderBits+len(codewordBits)*format.RepetitionFactor)
	bits = append(bits, headerBits(len(codewordBits))...)
	bits = append(bits, repeatBits(codewordBits)...)

	marked, err := watermark.EmbedBits(img, bits)
	if err != nil {
		return nil, err
	}

	return marked, nil
}
