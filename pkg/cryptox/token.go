package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ResetTokenBytes is the entropy of a password-reset token before encoding.
// 32 bytes hex-encodes to the 64-character string embedded in reset links.
const ResetTokenBytes = 32

// GenerateToken creates a cryptographically secure random token of the given
// byte length, returned hex-encoded.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// FingerprintToken returns a deterministic SHA-256 digest of a token,
// hex-encoded. Only the fingerprint is ever persisted; a database read alone
// cannot recover a redeemable token.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
