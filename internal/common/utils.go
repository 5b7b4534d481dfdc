package common

import (
	"crypto/sha256"
	"fmt"
)

// ContentHash computes the SHA256 hash of content and returns the hex string.
// Used to identify an input file in run history independent of its path.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
