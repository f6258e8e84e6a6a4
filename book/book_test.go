package book

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stegano/errs"
)

func TestEncodeNearestOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		msg       string
		positions []int64
	}{
		{"abc walk", "abcabc", "bca", []int64{1, 1, 1}},
		{"repeated char stays put", "aaab", "aa", []int64{0, 0}},
		{"forward occurrence nearer", "abcabc", "ca", []int64{2, 1}},
		{"sentence", "at The old house where They lived", "The", []int64{3, 1, 1}},
		{"empty message", "abc", "", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(tt.reference)
			got, err := enc.Encode(tt.msg)
			require.NoError(t, err)
			require.Equal(t, len(tt.positions), len(got))
			for i := range tt.positions {
				assert.Equal(t, tt.positions[i], got[i])
			}
		})
	}
}

func TestEncodeForwardWinsTies(t *testing.T) {
	// 'a' occurs at 0 and 2; after anchoring on 'b' at index 1 both are one
	// step away, and the forward occurrence must win.
	enc := NewEncoder("aba")
	positions, err := enc.Encode("ba")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1}, positions)
}

func TestEncodeCharacterNotInReference(t *testing.T) {
	enc := NewEncoder("plain ascii reference text")

	_, err := enc.Encode("straße")
	require.ErrorIs(t, err, errs.ErrCharacterNotInReference)
	assert.Contains(t, err.Error(), "'ß'")

	// The first character missing takes the same path as a later one.
	_, err = enc.Encode("ßtra")
	require.ErrorIs(t, err, errs.ErrCharacterNotInReference)
	assert.Contains(t, err.Error(), "index 0")
}

func TestDecodeBoundsChecks(t *testing.T) {
	enc := NewEncoder("abcabc")

	_, err := enc.Decode([]int64{-1})
	require.ErrorIs(t, err, errs.ErrInvalidPosition)

	_, err = enc.Decode([]int64{6})
	require.ErrorIs(t, err, errs.ErrInvalidPosition)

	_, err = enc.Decode([]int64{2, -3})
	require.ErrorIs(t, err, errs.ErrInvalidPosition)

	_, err = enc.Decode([]int64{5, 1})
	require.ErrorIs(t, err, errs.ErrInvalidPosition)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		msg       string
	}{
		{"simple", "abcabc", "bca"},
		{"sentence", "at The old house where They lived", "The"},
		{"unicode", "héllo wörld ß", "ßöé"},
		{"empty", "anything", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(tt.reference)
			positions, err := enc.Encode(tt.msg)
			require.NoError(t, err)
			got, err := enc.Decode(positions)
			require.NoError(t, err)
			assert.Equal(t, tt.msg, got)
		})
	}
}

func TestRoundTripRandomMessages(t *testing.T) {
	const reference = "the quick brown fox jumps over the lazy dog, " +
		"and the slow grey wolf watches from the tall dark trees."
	enc := NewEncoder(reference)
	refRunes := []rune(reference)

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		msg := make([]rune, rng.Intn(80))
		for j := range msg {
			msg[j] = refRunes[rng.Intn(len(refRunes))]
		}

		positions, err := enc.Encode(string(msg))
		require.NoError(t, err)
		got, err := enc.Decode(positions)
		require.NoError(t, err)
		require.Equal(t, string(msg), got)
	}
}

// nearestLinear is the reference linear-scan rule from the wire contract:
// minimize |idx - anchor| over the whole text, larger index on ties.
func nearestLinear(runes []rune, r rune, anchor int) int {
	best := -1
	for i, c := range runes {
		if c != r {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		db, di := abs(best-anchor), abs(i-anchor)
		if di < db || (di == db && i > best) {
			best = i
		}
	}

	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func TestNearestMatchesLinearScan(t *testing.T) {
	const reference = "mississippi banana cabbage"
	enc := NewEncoder(reference)
	runes := []rune(reference)

	for anchor := 0; anchor < len(runes); anchor++ {
		for _, r := range []rune{'a', 'b', 'i', 's', 'p', 'm'} {
			occ := enc.index[r]
			require.NotEmpty(t, occ)
			assert.Equal(t, nearestLinear(runes, r, anchor), nearest(occ, anchor),
				"rune %q anchor %d", r, anchor)
		}
	}
}
