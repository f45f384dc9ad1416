// Package auth provides authentication utilities including password hashing and JWT.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the password does not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash stored in the user document.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plain text password with a stored hash.
// A wrong password yields ErrPasswordMismatch; a malformed hash yields the bcrypt error.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// PasswordMatches reports whether password is the one hash was made from.
func PasswordMatches(password, hash string) bool {
	return CheckPassword(password, hash) == nil
}
