package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"

	"authd/internal/domain/service"
)

const saltLength = 16

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// sha256Hasher is a concrete implementation of the PasswordHasher interface.
// The stored format is hex(sha256(password + salt)) with the salt persisted
// next to the hash, matching the credential rows this service inherits.
type sha256Hasher struct{}

// NewSha256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSha256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// GenerateSalt produces a random alphanumeric salt for a new credential.
func (h *sha256Hasher) GenerateSalt() (string, error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	salt := make([]byte, saltLength)
	for i, b := range raw {
		salt[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}

	return string(salt), nil
}

// Hash computes the stored form of a password with the given salt.
func (h *sha256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))

	return hex.EncodeToString(sum[:])
}

// Check compares a candidate password against the stored hash in constant time.
func (h *sha256Hasher) Check(password, salt, hash string) bool {
	candidate := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
