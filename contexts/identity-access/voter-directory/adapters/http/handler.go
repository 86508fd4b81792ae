package httpadapter

import (
	"context"
	"log/slog"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	httptransport "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/transport/http"
)

type Handler struct {
	Register commands.RegisterVoterUseCase
	Voters   queries.FindVoterUseCase
	Logger   *slog.Logger
}

// RegisterVoterHandler godoc
// @Summary Register voter
// @Description Stores a voter after checking identity uniqueness, formats, age and credential strength.
// @Tags voters
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterVoterRequest true "Voter"
// @Success 201 {object} httptransport.VoterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /register [post]
func (h Handler) RegisterVoterHandler(
	ctx context.Context,
	req httptransport.RegisterVoterRequest,
) (httptransport.VoterResponse, error) {
	voter, err := h.Register.Execute(ctx, commands.RegisterVoterCommand{
		RegistrationNumber: string(req.RegistrationNumber),
		Name:               req.Name,
		Email:              req.Email,
		IdentityDocument:   string(req.IdentityDocument),
		BirthDate:          req.BirthDate,
		Secret:             req.Secret,
	})
	if err != nil {
		return httptransport.VoterResponse{}, err
	}
	return mapVoter(voter), nil
}

func (h Handler) FindByCredentialsHandler(
	ctx context.Context,
	req httptransport.LoginRequest,
) (httptransport.VoterResponse, error) {
	voter, err := h.Voters.FindByCredentials(ctx, queries.FindByCredentialsQuery{
		RegistrationNumber: string(req.RegistrationNumber),
		IdentityDocument:   string(req.IdentityDocument),
		BirthDate:          req.BirthDate,
		Secret:             req.Secret,
	})
	if err != nil {
		return httptransport.VoterResponse{}, err
	}
	return mapVoter(voter), nil
}

func (h Handler) GetVoterHandler(ctx context.Context, registrationNumber string) (httptransport.VoterResponse, error) {
	voter, err := h.Voters.GetByRegistration(ctx, registrationNumber)
	if err != nil {
		return httptransport.VoterResponse{}, err
	}
	return mapVoter(voter), nil
}

func mapVoter(voter entities.Voter) httptransport.VoterResponse {
	return httptransport.VoterResponse{
		RegistrationNumber: voter.RegistrationNumber,
		Name:               voter.Name,
		Email:              voter.Email,
		IdentityDocument:   voter.IdentityDocument,
		BirthDate:          voter.BirthDate,
		RegisteredAt:       voter.CreatedAt,
	}
}
