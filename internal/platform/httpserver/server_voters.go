package httpserver

import (
	"errors"
	"net/http"
	"time"

	votererrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
	voterhttp "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/transport/http"
)

// LoginResponse is the legacy {mensaje, votante} body plus the session token.
type LoginResponse struct {
	Message   string                  `json:"mensaje"`
	Voter     voterhttp.VoterResponse `json:"votante"`
	Token     string                  `json:"token"`
	ExpiresAt time.Time               `json:"expira"`
}

func (s *Server) handleRegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req voterhttp.RegisterVoterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeVoterError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	resp, err := s.voters.Handler.RegisterVoterHandler(r.Context(), req)
	if err != nil {
		writeVoterDomainError(w, err)
		return
	}
	s.metrics.VoterRegistered()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req voterhttp.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeVoterError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	voter, err := s.voters.Handler.FindByCredentialsHandler(r.Context(), req)
	if err != nil {
		s.metrics.LoginAttempt(false)
		if errors.Is(err, votererrors.ErrVoterNotFound) {
			writeVoterError(w, http.StatusBadRequest, "invalid_credentials", msgBadCredentials)
			return
		}
		writeVoterDomainError(w, err)
		return
	}

	token, err := s.sessions.Handler.IssueTokenHandler(r.Context(), voter.RegistrationNumber, voter.Email)
	if err != nil {
		s.logger.Error("session token issue failed",
			"event", "http_login_token_failed",
			"module", "internal/platform/httpserver",
			"layer", "transport",
			"registration_number", voter.RegistrationNumber,
			"error", err.Error(),
		)
		writeSessionDomainError(w, err)
		return
	}
	s.metrics.LoginAttempt(true)
	writeJSON(w, http.StatusOK, LoginResponse{
		Message:   "Inicio de sesión exitoso",
		Voter:     voter,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
}

func (s *Server) handleCurrentVoter(w http.ResponseWriter, r *http.Request) {
	claims, err := s.sessions.Handler.VerifyTokenHandler(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	resp, err := s.voters.Handler.GetVoterHandler(r.Context(), claims.RegistrationNumber)
	if err != nil {
		writeVoterDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
