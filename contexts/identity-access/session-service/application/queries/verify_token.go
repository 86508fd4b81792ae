package queries

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/ports"
)

type VerifyTokenUseCase struct {
	Codec  ports.TokenCodec
	Logger *slog.Logger
}

// Execute accepts the raw Authorization header value, with or without the
// Bearer scheme.
func (uc VerifyTokenUseCase) Execute(_ context.Context, authorization string) (entities.Claims, error) {
	logger := application.ResolveLogger(uc.Logger)
	token := bearerToken(authorization)
	if token == "" {
		return entities.Claims{}, domainerrors.ErrMissingToken
	}

	claims, err := uc.Codec.Decode(token)
	if err != nil {
		logger.Warn("session token rejected",
			"event", "session_token_rejected",
			"module", "identity-access/session-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Claims{}, domainerrors.ErrInvalidOrExpired
	}
	return claims, nil
}

func bearerToken(header string) string {
	value := strings.TrimSpace(header)
	if len(value) > 7 && strings.EqualFold(value[:7], "bearer ") {
		value = strings.TrimSpace(value[7:])
	}
	return value
}
