package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/ports"
)

const DefaultTokenTTL = time.Hour

type IssueTokenUseCase struct {
	Codec  ports.TokenCodec
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	TTL    time.Duration
	Logger *slog.Logger
}

func (uc IssueTokenUseCase) Execute(ctx context.Context, subject entities.Subject) (entities.IssuedToken, error) {
	logger := application.ResolveLogger(uc.Logger)
	subject.RegistrationNumber = strings.TrimSpace(subject.RegistrationNumber)
	subject.Email = strings.TrimSpace(subject.Email)
	if subject.RegistrationNumber == "" {
		return entities.IssuedToken{}, domainerrors.ErrInvalidSubject
	}

	tokenID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.IssuedToken{}, err
	}
	ttl := uc.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := uc.now()
	claims := entities.Claims{
		Subject:   subject,
		TokenID:   tokenID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token, err := uc.Codec.Encode(claims)
	if err != nil {
		logger.Error("session token signing failed",
			"event", "session_token_sign_failed",
			"module", "identity-access/session-service",
			"layer", "application",
			"registration_number", subject.RegistrationNumber,
			"error", err.Error(),
		)
		return entities.IssuedToken{}, err
	}

	logger.Info("session token issued",
		"event", "session_token_issued",
		"module", "identity-access/session-service",
		"layer", "application",
		"registration_number", subject.RegistrationNumber,
		"token_id", tokenID,
		"expires_at", claims.ExpiresAt,
	)
	return entities.IssuedToken{
		Token:     token,
		Claims:    claims,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (uc IssueTokenUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
