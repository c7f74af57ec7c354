package auth

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
)

// GenerateResetToken returns a 40-hex-char single-use token. The sha1 digest
// only fixes the rendered length; unguessability comes from the 32 random
// bytes underneath.
func GenerateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:]), nil
}
