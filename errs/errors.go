// Package errs defines the sentinel errors shared across the stegano
// packages.
//
// Each error corresponds to one failure category surfaced to callers.
// Call sites wrap these with fmt.Errorf("...: %w", ...) to attach detail;
// callers match with errors.Is.
package errs

import "errors"

// Encode-side errors.
var (
	// ErrCharacterNotInReference indicates a message character that does not
	// occur anywhere in the reference text.
	ErrCharacterNotInReference = errors.New("character not found in reference text")

	// ErrImageTooSmall indicates the carrier image has fewer 8x8 blocks than
	// the header plus the repetition-coded payload requires.
	ErrImageTooSmall = errors.New("image too small for message")

	// ErrPayloadTooLarge indicates the compressed payload exceeds the
	// capacity of a single Reed-Solomon codeword.
	ErrPayloadTooLarge = errors.New("payload exceeds Reed-Solomon codeword capacity")
)

// Decode-side errors.
var (
	// ErrUncorrectableErrors indicates the Reed-Solomon decoder could not
	// correct the received codeword.
	ErrUncorrectableErrors = errors.New("too many errors to correct")

	// ErrCompressionFailed indicates the decompressor rejected the payload
	// bytes.
	ErrCompressionFailed = errors.New("decompression failed")

	// ErrTruncatedVarint indicates the packed positions ended in the middle
	// of a varint.
	ErrTruncatedVarint = errors.New("truncated varint")

	// ErrTrailingGarbage indicates packed position bytes that cannot belong
	// to any varint sequence.
	ErrTrailingGarbage = errors.New("trailing garbage in packed positions")

	// ErrInvalidPosition indicates a reconstructed position outside the
	// reference text.
	ErrInvalidPosition = errors.New("position outside reference text")

	// ErrInvalidHeader indicates a length header inconsistent with the
	// carrier capacity or the wire format.
	ErrInvalidHeader = errors.New("invalid length header")
)
