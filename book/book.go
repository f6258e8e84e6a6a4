// Package book implements the book-cipher position codec: message
// characters become signed positions into a shared reference text.
//
// The first position is an absolute index of the first occurrence of the
// first message character. Every later position is a signed delta from the
// previous one, chosen so the absolute index is the occurrence of the
// character nearest to the previous index, with forward occurrences
// winning distance ties. Decoding walks the deltas and reads the
// characters back out of the reference.
//
// Both sides must operate on byte-identical reference text; characters are
// compared by Unicode scalar value.
package book

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arloliu/stegano/errs"
)

// Encoder maps message characters to positions in a reference text.
//
// The zero value is not usable; create one with NewEncoder. The encoder is
// immutable after construction and safe for concurrent use.
type Encoder struct {
	runes []rune
	index map[rune][]int // per rune, occurrence indices in ascending order
}

// NewEncoder builds an Encoder over the given reference text.
//
// Construction walks the text once and records, per distinct rune, the
// sorted list of its occurrence indices. Lookups are then binary searches
// around the running anchor instead of linear scans over the whole text.
func NewEncoder(reference string) *Encoder {
	runes := []rune(reference)
	index := make(map[rune][]int)
	for i, r := range runes {
		index[r] = append(index[r], i)
	}

	return &Encoder{runes: runes, index: index}
}

// Len returns the number of runes in the reference text.
func (e *Encoder) Len() int {
	return len(e.runes)
}

// Encode maps msg to its position list.
//
// The first element is the absolute index of the first occurrence of
// msg[0]; each subsequent element is the delta from the previous absolute
// index to the occurrence of the next character nearest to it, larger
// index winning on equal distance.
//
// Returns ErrCharacterNotInReference (with the offending rune and its
// message index) if any character of msg does not occur in the reference.
func (e *Encoder) Encode(msg string) ([]int64, error) {
	positions := make([]int64, 0, len(msg))
	anchor := 0
	for i, r := range []rune(msg) {
		occ := e.index[r]
		if len(occ) == 0 {
			return nil, fmt.Errorf("%w: %q at message index %d", errs.ErrCharacterNotInReference, r, i)
		}

		var idx int
		if i == 0 {
			idx = occ[0]
			positions = append(positions, int64(idx))
		} else {
			idx = nearest(occ, anchor)
			positions = append(positions, int64(idx-anchor))
		}
		anchor = idx
	}

	return positions, nil
}

// Decode reconstructs the message from a position list produced by Encode.
//
// Returns ErrInvalidPosition if the first position or any delta walks
// outside the reference text.
func (e *Encoder) Decode(positions []int64) (string, error) {
	if len(positions) == 0 {
		return "", nil
	}

	var sb strings.Builder
	n := int64(len(e.runes))

	anchor := positions[0]
	if anchor < 0 || anchor >= n {
		return "", fmt.Errorf("%w: first position %d, reference length %d", errs.ErrInvalidPosition, anchor, n)
	}
	sb.WriteRune(e.runes[anchor])

	for i, delta := range positions[1:] {
		anchor += delta
		if anchor < 0 || anchor >= n {
			return "", fmt.Errorf("%w: position %d at index %d, reference length %d",
				errs.ErrInvalidPosition, anchor, i+1, n)
		}
		sb.WriteRune(e.runes[anchor])
	}

	return sb.String(), nil
}

// nearest returns the element of the sorted occurrence list occ closest to
// anchor, preferring the larger index when two are equidistant.
func nearest(occ []int, anchor int) int {
	i := sort.SearchInts(occ, anchor)
	if i == len(occ) {
		return occ[len(occ)-1]
	}
	if i == 0 {
		return occ[0]
	}

	// occ[i-1] < anchor <= occ[i]; forward wins ties.
	if anchor-occ[i-1] < occ[i]-anchor {
		return occ[i-1]
	}

	return occ[i]
}
