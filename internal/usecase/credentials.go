package usecase

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// PlainVerifier stores and compares passwords as-is, matching the
// original storefront's mock authentication exactly. Not suitable for
// anything beyond demo data; see BcryptVerifier.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier hashes credentials with bcrypt. Selected with
// AUTH_SCHEME=bcrypt; seeded demo accounts only authenticate under the
// plain scheme.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptVerifier) Verify(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
