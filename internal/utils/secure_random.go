package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecureToken returns a URL-safe random token with byteLen bytes of entropy.
func GenerateSecureToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
