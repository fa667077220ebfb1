package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// Encryptor protects invitation codes at rest. The store only ever sees the
// Encrypt output; lookups go through the deterministic CodeDigest index.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

var ErrDecryptionFailed = errors.New("decryption failed: wrong key or corrupted data")

// AESEncryptor encrypts with AES-256-GCM. The nonce is prepended to the
// ciphertext and the whole blob is base64-encoded for storage.
type AESEncryptor struct {
	aead cipher.AEAD
}

func NewAESEncryptor(key []byte) (AESEncryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return AESEncryptor{}, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return AESEncryptor{}, err
	}
	return AESEncryptor{aead: aead}, nil
}

func (e AESEncryptor) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (e AESEncryptor) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(raw) < e.aead.NonceSize() {
		return "", ErrDecryptionFailed
	}
	nonce, sealed := raw[:e.aead.NonceSize()], raw[e.aead.NonceSize():]
	plain, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

// IdentityEncryptor stores codes verbatim. Test substitute only.
type IdentityEncryptor struct{}

func (IdentityEncryptor) Encrypt(plaintext string) (string, error)  { return plaintext, nil }
func (IdentityEncryptor) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }
