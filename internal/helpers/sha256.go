package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 returns the hex-encoded checksum of the input string. Expression
// identifiers are derived from a prefix of this checksum.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}
