// Package checksum fingerprints backing file contents so a save can tell
// whether the file changed since it was last read or written.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Matches reports whether data hashes to digest. An empty digest means
// nothing has been recorded yet and only matches empty data.
func Matches(data []byte, digest string) bool {
	if digest == "" {
		return len(data) == 0
	}
	return Sum(data) == digest
}
