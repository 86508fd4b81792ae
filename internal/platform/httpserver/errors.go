package httpserver

import (
	"errors"
	"net/http"

	campaignerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	campaignhttp "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/transport/http"
	sessionerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service/domain/errors"
	votererrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
	voterhttp "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/transport/http"
)

const (
	msgInternal          = "Error interno del servidor"
	msgInvalidJSON       = "El cuerpo de la solicitud debe ser JSON válido."
	msgMissingToken      = "No se proporcionó un token."
	msgInvalidToken      = "Token inválido o expirado."
	msgBadCredentials    = "Credenciales incorrectas."
	msgCampaignNotFound  = "Campaña no encontrada"
	msgCandidateNotFound = "Candidato no encontrado"
)

func writeVoterDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votererrors.ErrDuplicateIdentity):
		writeVoterError(w, http.StatusBadRequest, "duplicate_identity", "El DPI o email ya están registrados.")
	case errors.Is(err, votererrors.ErrInvalidIdentityDocument):
		writeVoterError(w, http.StatusBadRequest, "invalid_identity_document", "DPI inválido.")
	case errors.Is(err, votererrors.ErrInvalidRegistrationNumber):
		writeVoterError(w, http.StatusBadRequest, "invalid_registration_number", "Número de colegiado inválido.")
	case errors.Is(err, votererrors.ErrInvalidFormat):
		writeVoterError(w, http.StatusBadRequest, "invalid_format", err.Error())
	case errors.Is(err, votererrors.ErrInvalidAge):
		writeVoterError(w, http.StatusBadRequest, "invalid_age", "Debe ser mayor de edad.")
	case errors.Is(err, votererrors.ErrWeakCredential):
		writeVoterError(w, http.StatusBadRequest, "weak_credential",
			"La contraseña debe tener al menos 8 caracteres, incluyendo una mayúscula, una minúscula y un número.")
	case errors.Is(err, votererrors.ErrVoterNotFound):
		writeVoterError(w, http.StatusNotFound, "voter_not_found", "Votante no encontrado.")
	default:
		writeVoterError(w, http.StatusInternalServerError, "internal_error", msgInternal)
	}
}

func writeSessionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionerrors.ErrMissingToken):
		writeVoterError(w, http.StatusForbidden, "missing_token", msgMissingToken)
	case errors.Is(err, sessionerrors.ErrInvalidOrExpired):
		writeVoterError(w, http.StatusUnauthorized, "invalid_token", msgInvalidToken)
	default:
		writeVoterError(w, http.StatusInternalServerError, "internal_error", msgInternal)
	}
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignerrors.ErrCampaignNotFound):
		writeCampaignError(w, http.StatusNotFound, "campaign_not_found", msgCampaignNotFound)
	case errors.Is(err, campaignerrors.ErrCandidateNotFound):
		writeCampaignError(w, http.StatusNotFound, "candidate_not_found", msgCandidateNotFound)
	case errors.Is(err, campaignerrors.ErrMissingSelection):
		writeCampaignError(w, http.StatusBadRequest, "missing_selection", "Debe seleccionar un candidato")
	case errors.Is(err, campaignhttp.ErrCandidatesNotArray):
		writeCampaignError(w, http.StatusBadRequest, "candidates_not_array", "Candidatos debe ser un arreglo.")
	case errors.Is(err, campaignerrors.ErrInvalidInput):
		writeCampaignError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, campaignerrors.ErrCampaignClosed):
		writeCampaignError(w, http.StatusConflict, "campaign_closed", "La campaña está cerrada.")
	case errors.Is(err, campaignerrors.ErrCampaignNotOpen):
		writeCampaignError(w, http.StatusConflict, "campaign_not_open", "La campaña no está habilitada para votar.")
	case errors.Is(err, campaignerrors.ErrAlreadyVoted):
		writeCampaignError(w, http.StatusConflict, "already_voted", "El votante ya emitió su voto en esta campaña.")
	case errors.Is(err, campaignerrors.ErrVoterRequired):
		writeCampaignError(w, http.StatusForbidden, "missing_token", msgMissingToken)
	default:
		writeCampaignError(w, http.StatusInternalServerError, "internal_error", msgInternal)
	}
}

func writeVoterError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, voterhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeCampaignError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, campaignhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
