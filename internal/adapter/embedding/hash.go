package embedding

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashString returns the hex-encoded SHA-256 digest of s. Used to derive
// cache keys from arbitrary-length input texts.
func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
