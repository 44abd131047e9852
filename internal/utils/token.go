// internal/utils/token.go
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// 36 random bytes encode to 48 URL-safe characters, well inside the
// sessions.token column.
const sessionTokenBytes = 36

// GenerateSessionToken returns the opaque value stored in sessions.token.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// FingerprintCredential identifies a credential in logs without exposing it.
func FingerprintCredential(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:8])
}
