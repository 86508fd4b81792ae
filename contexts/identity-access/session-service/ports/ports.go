package ports

import (
	"context"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
)

// TokenCodec signs claims and verifies signed tokens. Decode fails for bad
// signatures, unexpected algorithms and expired tokens.
type TokenCodec interface {
	Encode(claims entities.Claims) (string, error)
	Decode(token string) (entities.Claims, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
