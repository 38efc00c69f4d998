// Package digest fingerprints extracted text.
//
// Digests are BLAKE3-256 rendered as 64 lowercase hex characters. The input is
// hashed byte for byte, so any change to the text, including whitespace or a
// line ending, produces a different digest.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Size is the length of a digest in hex characters
const Size = 64

// ShortSize is the length of the display prefix returned by Short
const ShortSize = 8

// Sum returns the digest of text
func Sum(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether text still hashes to want
func Matches(text, want string) bool {
	return Sum(text) == want
}

// Short returns the display prefix of a digest
func Short(d string) string {
	if len(d) <= ShortSize {
		return d
	}
	return d[:ShortSize]
}

// Valid reports whether d looks like a digest produced by Sum
func Valid(d string) bool {
	if len(d) != Size {
		return false
	}
	_, err := hex.DecodeString(d)
	return err == nil
}
