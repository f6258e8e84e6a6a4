// Package encoding implements the packed wire form of book-cipher position
// lists: zigzag mapping of signed positions to unsigned integers, followed
// by little-endian base-128 varint bytes.
package encoding

import (
	"fmt"

	"github.com/arloliu/stegano/errs"
	"github.com/arloliu/stegano/internal/pool"
)

// MaxVarintLen64 is the maximum number of bytes a varint-encoded 64-bit
// value occupies.
const MaxVarintLen64 = 10

// Zigzag maps a signed integer to an unsigned one so that values of small
// magnitude stay small: 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, etc.
func Zigzag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

// Unzigzag is the inverse of Zigzag.
func Unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// AppendVarint appends the little-endian base-128 encoding of u to dst.
//
// Each byte carries seven payload bits, least-significant group first; the
// continuation bit (MSB) is set on every byte except the last.
func AppendVarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}

	return append(dst, byte(u))
}

// Uvarint decodes a single varint from data, returning the value and the
// number of bytes consumed.
//
// Returns ErrTruncatedVarint if data ends before the final byte of the
// integer, and ErrTrailingGarbage if the encoding cannot fit a 64-bit
// value (more than MaxVarintLen64 bytes, or overflow in the final byte).
func Uvarint(data []byte) (uint64, int, error) {
	var u uint64
	var shift uint

	for i, b := range data {
		if i >= MaxVarintLen64 {
			return 0, 0, fmt.Errorf("%w: varint exceeds %d bytes", errs.ErrTrailingGarbage, MaxVarintLen64)
		}
		if b < 0x80 {
			if i == MaxVarintLen64-1 && b > 1 {
				return 0, 0, fmt.Errorf("%w: varint overflows 64 bits", errs.ErrTrailingGarbage)
			}

			return u | uint64(b)<<shift, i + 1, nil
		}
		u |= uint64(b&0x7f) << shift
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: stream ends after %d bytes", errs.ErrTruncatedVarint, len(data))
}

// Pack encodes a sequence of signed integers as concatenated
// varint(zigzag(v)) bytes.
//
// The returned slice is newly allocated and owned by the caller.
func Pack(values []int64) []byte {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(values) * 2) // small deltas dominate in practice
	for _, v := range values {
		buf.B = AppendVarint(buf.B, Zigzag(v))
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// Unpack decodes the exact inverse of Pack, consuming all of data.
//
// Returns ErrTruncatedVarint if the stream ends mid-integer and
// ErrTrailingGarbage if the bytes cannot form a valid varint sequence.
func Unpack(data []byte) ([]int64, error) {
	values := make([]int64, 0, len(data))
	for len(data) > 0 {
		u, n, err := Uvarint(data)
		if err != nil {
			return nil, err
		}
		values = append(values, Unzigzag(u))
		data = data[n:]
	}

	return values, nil
}
