package hashing

import (
	"errors"
	"strings"
	"testing"

	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("Password1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !hasher.Matches(hash, "Password1") {
		t.Fatalf("expected secret to match its hash")
	}
	if hasher.Matches(hash, "Password2") {
		t.Fatalf("expected different secret to be rejected")
	}
	if hasher.Matches("", "Password1") {
		t.Fatalf("expected empty hash to be rejected")
	}
}

func TestBcryptHasherRejectsOverlongSecret(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	_, err := hasher.Hash("Aa1" + strings.Repeat("x", 80))
	if !errors.Is(err, domainerrors.ErrWeakCredential) {
		t.Fatalf("expected weak credential for overlong secret, got %v", err)
	}
}
