package hashing

import (
	"errors"
	"fmt"

	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher stores credentials as bcrypt hashes. Zero Cost means
// bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: secret exceeds 72 bytes", domainerrors.ErrWeakCredential)
		}
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return string(hash), nil
}

func (h BcryptHasher) Matches(hash string, secret string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
