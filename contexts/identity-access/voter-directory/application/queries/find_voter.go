package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/ports"
)

type FindByCredentialsQuery struct {
	RegistrationNumber string
	IdentityDocument   string
	BirthDate          string
	Secret             string
}

type FindVoterUseCase struct {
	Voters ports.VoterRepository
	Hasher ports.CredentialHasher
	Logger *slog.Logger
}

// FindByCredentials requires all four fields to match the stored voter.
// Every mismatch is reported as ErrVoterNotFound.
func (uc FindVoterUseCase) FindByCredentials(ctx context.Context, query FindByCredentialsQuery) (entities.Voter, error) {
	logger := application.ResolveLogger(uc.Logger)
	registration := strings.TrimSpace(query.RegistrationNumber)

	voter, err := uc.Voters.GetVoterByRegistration(ctx, registration)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrVoterNotFound) {
			logger.Error("voter credential lookup failed",
				"event", "voter_credentials_lookup_failed",
				"module", "identity-access/voter-directory",
				"layer", "application",
				"registration_number", registration,
				"error", err.Error(),
			)
		}
		return entities.Voter{}, err
	}

	if voter.IdentityDocument != strings.TrimSpace(query.IdentityDocument) ||
		voter.BirthDate != strings.TrimSpace(query.BirthDate) ||
		!uc.Hasher.Matches(voter.CredentialHash, query.Secret) {
		logger.Warn("voter credentials mismatch",
			"event", "voter_credentials_mismatch",
			"module", "identity-access/voter-directory",
			"layer", "application",
			"registration_number", registration,
		)
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return voter, nil
}

func (uc FindVoterUseCase) GetByRegistration(ctx context.Context, registrationNumber string) (entities.Voter, error) {
	return uc.Voters.GetVoterByRegistration(ctx, strings.TrimSpace(registrationNumber))
}
