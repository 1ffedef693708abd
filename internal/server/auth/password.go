// Package auth provides the credential primitives for the FinTrack server:
// bcrypt password hashing and HMAC-signed access tokens.
package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword applies a salted bcrypt transform to the plaintext. Two calls
// with the same plaintext produce different hashes; both verify correctly.
func HashPassword(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// A malformed stored hash counts as a mismatch, not an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
