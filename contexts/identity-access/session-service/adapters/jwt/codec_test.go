package jwtadapter

import (
	"errors"
	"testing"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"

	"github.com/golang-jwt/jwt/v5"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func testClaims(now time.Time) entities.Claims {
	return entities.Claims{
		Subject: entities.Subject{
			RegistrationNumber: "12345",
			Email:              "ana@example.com",
		},
		TokenID:   "token-1",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestCodecRoundTrip(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)}
	codec := NewCodec("secret", "proyectofinal", clock)

	token, err := codec.Encode(testClaims(clock.now))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject.RegistrationNumber != "12345" || claims.Subject.Email != "ana@example.com" {
		t.Fatalf("unexpected subject: %+v", claims.Subject)
	}
	if claims.TokenID != "token-1" {
		t.Fatalf("expected token id token-1, got %q", claims.TokenID)
	}
	if !claims.ExpiresAt.Equal(clock.now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %s", claims.ExpiresAt)
	}
}

func TestCodecRejectsExpiredToken(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)}
	codec := NewCodec("secret", "proyectofinal", clock)
	token, err := codec.Encode(testClaims(clock.now))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Hour)
	if _, err := codec.Decode(token); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected invalid or expired, got %v", err)
	}
}

func TestCodecRejectsForeignSignatures(t *testing.T) {
	clock := &fixedClock{now: time.Now().UTC()}
	codec := NewCodec("secret", "proyectofinal", clock)

	other, err := NewCodec("other-secret", "proyectofinal", clock).Encode(testClaims(clock.now))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := codec.Decode(other); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected foreign signature to be rejected, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":    "12345",
		"email": "ana@example.com",
		"exp":   clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build unsigned token: %v", err)
	}
	if _, err := codec.Decode(unsigned); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected unsigned token to be rejected, got %v", err)
	}

	if _, err := codec.Decode("not-a-token"); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected malformed token to be rejected, got %v", err)
	}
}

func TestCodecRequiresSecret(t *testing.T) {
	codec := NewCodec("", "", nil)
	if _, err := codec.Encode(testClaims(time.Now())); !errors.Is(err, domainerrors.ErrSigningKeyMissing) {
		t.Fatalf("expected signing key missing, got %v", err)
	}
}
