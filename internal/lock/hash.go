package lock

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashFunc computes the persisted digest of a password
type HashFunc func(password string) string

// SHA256Hex is the default digest: unsalted hex-encoded SHA-256.
// It keeps compatibility with hashes written by existing installs.
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func digestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
