package ports

import (
	"context"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
)

// VoterRepository persists voters. CreateVoter must re-check uniqueness
// atomically and fail with ErrDuplicateIdentity on collision.
type VoterRepository interface {
	CreateVoter(ctx context.Context, voter entities.Voter) error
	IdentityTaken(ctx context.Context, email string, identityDocument string, registrationNumber string) (bool, error)
	GetVoterByRegistration(ctx context.Context, registrationNumber string) (entities.Voter, error)
}

type CredentialHasher interface {
	Hash(secret string) (string, error)
	Matches(hash string, secret string) bool
}

type Clock interface {
	Now() time.Time
}
