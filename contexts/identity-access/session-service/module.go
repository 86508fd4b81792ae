package sessionservice

import (
	"log/slog"
	"time"

	httpadapter "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/adapters/http"
	jwtadapter "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/adapters/jwt"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/ports"
)

const tokenIssuer = "proyectofinal"

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Codec  ports.TokenCodec
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	TTL    time.Duration
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Issue: commands.IssueTokenUseCase{
				Codec:  deps.Codec,
				Clock:  deps.Clock,
				IDGen:  deps.IDGen,
				TTL:    deps.TTL,
				Logger: deps.Logger,
			},
			Verify: queries.VerifyTokenUseCase{
				Codec:  deps.Codec,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewJWTModule wires the HS256 codec against the system clock.
func NewJWTModule(secret string, ttl time.Duration, logger *slog.Logger) Module {
	clock := jwtadapter.SystemClock{}
	return NewModule(Dependencies{
		Codec:  jwtadapter.NewCodec(secret, tokenIssuer, clock),
		Clock:  clock,
		IDGen:  jwtadapter.UUIDGenerator{},
		TTL:    ttl,
		Logger: logger,
	})
}
