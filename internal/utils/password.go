package utils

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordIterations = 100_000
	passwordSaltLength = 16
	passwordKeyLength  = sha256.Size
)

// NewPasswordSalt returns a fresh random salt for HashPassword.
func NewPasswordSalt() ([]byte, error) {
	return GenerateSecureRandomBytes(passwordSaltLength)
}

// HashPassword derives a PBKDF2-HMAC-SHA256 digest of password with salt.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, passwordIterations, passwordKeyLength, sha256.New)
}

// CheckPasswordHash compares a plaintext password against a stored salt and digest
// in constant time.
func CheckPasswordHash(password string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(HashPassword(password, salt), hash) == 1
}
