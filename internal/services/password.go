package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tsena/internal/models"
)

// PasswordVerifier isolates credential storage and comparison so the
// identity store does not care whether passwords are kept in plaintext
// or hashed. Compare returns models.ErrInvalidCredentials on mismatch.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Compare(stored, password string) error
}

// PlainVerifier stores passwords as-is. A mock placeholder, kept for
// parity with seeded demo accounts; do not use outside development.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return models.ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptVerifier) Compare(stored, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return models.ErrInvalidCredentials
	}
	return nil
}
