// Package source loads the shared reference text both parties feed the
// book cipher.
//
// The cipher only round-trips if both sides hold byte-identical reference
// text, so the loader keeps the bytes exactly as stored and offers two
// aids: transparent decompression of compressed reference files (large
// public-domain texts are usually shipped compressed), and a 64-bit
// fingerprint the parties can compare out of band before blaming the
// channel for a failed decode.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Load reads the reference text at path.
//
// Files ending in .gz, .zst, .zstd or .lz4 are transparently decompressed
// (gzip, Zstandard and lz4 frame formats); anything else is returned
// verbatim. Line endings are preserved; normalize explicitly with
// Normalize if the texts may have crossed platforms.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening reference text: %w", err)
	}
	defer f.Close()

	var r io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("reading gzip reference text %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return "", fmt.Errorf("reading zstd reference text %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	default:
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading reference text %s: %w", path, err)
	}

	return string(data), nil
}

// Normalize converts CRLF and bare CR line endings to LF.
//
// Both parties must feed the codec identical bytes; running Normalize on
// both sides removes the most common source of divergence.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Fingerprint returns the xxHash64 of the exact reference bytes.
//
// Equal fingerprints on both sides mean the book cipher will address the
// same text.
func Fingerprint(text string) uint64 {
	return xxhash.Sum64String(text)
}
