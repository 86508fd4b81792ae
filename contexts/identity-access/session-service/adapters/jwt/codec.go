package jwtadapter

import (
	"fmt"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

// voterClaims uses the legacy token layout: id carries the registration
// number alongside the voter email.
type voterClaims struct {
	RegistrationNumber string `json:"id"`
	Email              string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs session tokens with HS256.
type Codec struct {
	Secret []byte
	Issuer string
	Clock  ports.Clock
}

func NewCodec(secret string, issuer string, clock ports.Clock) Codec {
	return Codec{
		Secret: []byte(secret),
		Issuer: issuer,
		Clock:  clock,
	}
}

func (c Codec) Encode(claims entities.Claims) (string, error) {
	if len(c.Secret) == 0 {
		return "", domainerrors.ErrSigningKeyMissing
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, voterClaims{
		RegistrationNumber: claims.Subject.RegistrationNumber,
		Email:              claims.Subject.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID,
			Issuer:    c.Issuer,
			Subject:   claims.Subject.RegistrationNumber,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	signed, err := token.SignedString(c.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (c Codec) Decode(raw string) (entities.Claims, error) {
	if len(c.Secret) == 0 {
		return entities.Claims{}, domainerrors.ErrSigningKeyMissing
	}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.Issuer != "" {
		options = append(options, jwt.WithIssuer(c.Issuer))
	}

	var parsed voterClaims
	if _, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return c.Secret, nil
	}, options...); err != nil {
		return entities.Claims{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidOrExpired, err)
	}

	claims := entities.Claims{
		Subject: entities.Subject{
			RegistrationNumber: parsed.RegistrationNumber,
			Email:              parsed.Email,
		},
		TokenID: parsed.ID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.UTC()
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.UTC()
	}
	return claims, nil
}

func (c Codec) now() time.Time {
	if c.Clock == nil {
		return time.Now().UTC()
	}
	return c.Clock.Now().UTC()
}
