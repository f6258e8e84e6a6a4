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

// Decode recovers the plaintext hidden in img using reference as the
// shared book-cipher text.
//
// Returns ErrInvalidHeader, ErrUncorrectableErrors, ErrCompressionFailed,
// ErrTruncatedVarint, ErrTrailingGarbage or ErrInvalidPosition as
// described in the errs package. No partial plaintext is ever returned.
func Decode(img *pixel.Image, reference string) (string, error) {
	raw := watermark.ExtractBits(img)

	numBits, err := parseHeader(raw, len(raw))
	if err != nil {
		return "", err
	}

	body := raw[format.HeaderBits:]
	if want := numBits * format.RepetitionFactor; len(body) > want {
		body = body[:want]
	}
	codeword := packBits(majorityVote(body, numBits))

	payload, _, err := reedsolomon.NewDecoder(reedsolomon.Field256).DecodeBytes(codeword, format.ParitySymbols)
	if err != nil {
		return "", err
	}

	packed, err := compress.NewZlibCompressor().Decompress(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCompressionFailed, err)
	}

	positions, err := encoding.Unpack(packed)
	if err != nil {
		return "", err
	}

	return book.NewEncoder(reference).Decode(positions)
}
