package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/ports"
)

type RegisterVoterCommand struct {
	RegistrationNumber string
	Name               string
	Email              string
	IdentityDocument   string
	BirthDate          string
	Secret             string
}

// RegisterVoterUseCase validates eligibility and stores a new voter.
// Duplicate identity is reported before any field format problem.
type RegisterVoterUseCase struct {
	Voters ports.VoterRepository
	Hasher ports.CredentialHasher
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc RegisterVoterUseCase) Execute(ctx context.Context, cmd RegisterVoterCommand) (entities.Voter, error) {
	logger := application.ResolveLogger(uc.Logger)
	cmd = normalizeRegisterCommand(cmd)

	taken, err := uc.Voters.IdentityTaken(ctx, cmd.Email, cmd.IdentityDocument, cmd.RegistrationNumber)
	if err != nil {
		logger.Error("voter identity lookup failed",
			"event", "voter_register_identity_lookup_failed",
			"module", "identity-access/voter-directory",
			"layer", "application",
			"registration_number", cmd.RegistrationNumber,
			"error", err.Error(),
		)
		return entities.Voter{}, err
	}
	if taken {
		logger.Warn("voter identity already registered",
			"event", "voter_register_duplicate_identity",
			"module", "identity-access/voter-directory",
			"layer", "application",
			"registration_number", cmd.RegistrationNumber,
		)
		return entities.Voter{}, domainerrors.ErrDuplicateIdentity
	}

	now := uc.now()
	if err := validateEligibility(cmd, now); err != nil {
		logger.Warn("voter registration rejected",
			"event", "voter_register_validation_failed",
			"module", "identity-access/voter-directory",
			"layer", "application",
			"registration_number", cmd.RegistrationNumber,
			"error", err.Error(),
		)
		return entities.Voter{}, err
	}

	hash, err := uc.Hasher.Hash(cmd.Secret)
	if err != nil {
		return entities.Voter{}, err
	}

	voter := entities.Voter{
		RegistrationNumber: cmd.RegistrationNumber,
		Name:               cmd.Name,
		Email:              cmd.Email,
		IdentityDocument:   cmd.IdentityDocument,
		BirthDate:          cmd.BirthDate,
		CredentialHash:     hash,
		CreatedAt:          now,
	}
	if err := uc.Voters.CreateVoter(ctx, voter); err != nil {
		logger.Error("voter create failed",
			"event", "voter_register_create_failed",
			"module", "identity-access/voter-directory",
			"layer", "application",
			"registration_number", voter.RegistrationNumber,
			"error", err.Error(),
		)
		return entities.Voter{}, err
	}

	logger.Info("voter registered",
		"event", "voter_registered",
		"module", "identity-access/voter-directory",
		"layer", "application",
		"registration_number", voter.RegistrationNumber,
	)
	return voter, nil
}

func validateEligibility(cmd RegisterVoterCommand, now time.Time) error {
	if !entities.ValidIdentityDocument(cmd.IdentityDocument) {
		return domainerrors.ErrInvalidIdentityDocument
	}
	if !entities.ValidRegistrationNumber(cmd.RegistrationNumber) {
		return domainerrors.ErrInvalidRegistrationNumber
	}
	if !entities.OfVotingAge(cmd.BirthDate, now) {
		return domainerrors.ErrInvalidAge
	}
	if !entities.StrongSecret(cmd.Secret) {
		return domainerrors.ErrWeakCredential
	}
	return nil
}

func normalizeRegisterCommand(cmd RegisterVoterCommand) RegisterVoterCommand {
	cmd.RegistrationNumber = strings.TrimSpace(cmd.RegistrationNumber)
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.IdentityDocument = strings.TrimSpace(cmd.IdentityDocument)
	cmd.BirthDate = strings.TrimSpace(cmd.BirthDate)
	return cmd
}

func (uc RegisterVoterUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
