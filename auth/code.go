package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Invitation codes and session tokens are opaque, unguessable strings.
// 32 random bytes gives 256 bits of entropy before encoding.
const codeBytes = 32

// NewCode generates a fresh opaque code, URL-safe and unpadded.
func NewCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CodeDigest returns a deterministic fingerprint of a code, used as the
// lookup index for invitation codes stored encrypted at rest. The AEAD
// ciphertext is nondeterministic, so the index must be computed from the
// plaintext instead.
func CodeDigest(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
