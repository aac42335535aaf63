package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// MaxPasswordBytes is the bcrypt input limit. Longer inputs are silently
	// truncated to their first 72 bytes at both hash and verify time, so a
	// password and its 72-byte prefix are interchangeable.
	MaxPasswordBytes = 72
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
)

func truncate(password string) []byte {
	raw := []byte(password)
	if len(raw) > MaxPasswordBytes {
		raw = raw[:MaxPasswordBytes]
	}

	return raw
}

// Hash generates a salted bcrypt hash of the password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword(truncate(password), DefaultCost)
	if err != nil {
		return "", ErrInvalidPassword
	}

	return string(bytes), nil
}

// Verify checks the candidate password against a stored hash using bcrypt's
// constant-time comparison. Every failure mode, including a malformed stored
// hash, collapses to ErrInvalidPassword; it never panics.
func Verify(candidate, hash string) error {
	if hash == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(candidate)); err != nil {
		return ErrInvalidPassword
	}

	return nil
}
