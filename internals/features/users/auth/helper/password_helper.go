package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// ValidateNewPassword mirrors the register rules for password resets.
func ValidateNewPassword(pw string) error {
	if len(strings.TrimSpace(pw)) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
