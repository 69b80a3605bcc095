package hashing

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// DigestLength is the length of a hex encoded digest.
const DigestLength = sha256.Size * 2

// Hash returns the hex encoded SHA-256 digest of the UTF-8 bytes of text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether digest is the hash of text.
func Verify(text, digest string) bool {
	if len(digest) != DigestLength {
		return false
	}
	want := Hash(text)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(digest))) == 1
}
