package httpadapter

import (
	"context"
	"log/slog"

	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/entities"
	httptransport "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/transport/http"
)

type Handler struct {
	Issue  commands.IssueTokenUseCase
	Verify queries.VerifyTokenUseCase
	Logger *slog.Logger
}

func (h Handler) IssueTokenHandler(
	ctx context.Context,
	registrationNumber string,
	email string,
) (httptransport.TokenResponse, error) {
	issued, err := h.Issue.Execute(ctx, entities.Subject{
		RegistrationNumber: registrationNumber,
		Email:              email,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (h Handler) VerifyTokenHandler(ctx context.Context, authorization string) (httptransport.ClaimsResponse, error) {
	claims, err := h.Verify.Execute(ctx, authorization)
	if err != nil {
		return httptransport.ClaimsResponse{}, err
	}
	return httptransport.ClaimsResponse{
		RegistrationNumber: claims.Subject.RegistrationNumber,
		Email:              claims.Subject.Email,
		TokenID:            claims.TokenID,
		IssuedAt:           claims.IssuedAt,
		ExpiresAt:          claims.ExpiresAt,
	}, nil
}
