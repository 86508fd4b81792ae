package sessionservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionservice "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"
)

func TestIssueAndVerifyToken(t *testing.T) {
	module := sessionservice.NewJWTModule("test-secret", time.Hour, nil)

	issued, err := module.Handler.IssueTokenHandler(context.Background(), "12345", "ana@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if issued.Token == "" {
		t.Fatalf("expected signed token")
	}
	if time.Until(issued.ExpiresAt) <= 0 {
		t.Fatalf("expected expiry in the future, got %s", issued.ExpiresAt)
	}

	for _, header := range []string{issued.Token, "Bearer " + issued.Token, "bearer " + issued.Token} {
		claims, err := module.Handler.VerifyTokenHandler(context.Background(), header)
		if err != nil {
			t.Fatalf("verify %q failed: %v", header[:6], err)
		}
		if claims.RegistrationNumber != "12345" || claims.Email != "ana@example.com" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	module := sessionservice.NewJWTModule("test-secret", time.Hour, nil)

	if _, err := module.Handler.VerifyTokenHandler(context.Background(), "  "); !errors.Is(err, domainerrors.ErrMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
	if _, err := module.Handler.VerifyTokenHandler(context.Background(), "Bearer garbage"); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	other := sessionservice.NewJWTModule("other-secret", time.Hour, nil)
	issued, err := other.Handler.IssueTokenHandler(context.Background(), "12345", "ana@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := module.Handler.VerifyTokenHandler(context.Background(), issued.Token); !errors.Is(err, domainerrors.ErrInvalidOrExpired) {
		t.Fatalf("expected token from another key to be rejected, got %v", err)
	}
}

func TestIssueTokenRequiresSubject(t *testing.T) {
	module := sessionservice.NewJWTModule("test-secret", time.Hour, nil)
	if _, err := module.Handler.IssueTokenHandler(context.Background(), "", "ana@example.com"); !errors.Is(err, domainerrors.ErrInvalidSubject) {
		t.Fatalf("expected invalid subject, got %v", err)
	}
}
