package httpserver

import (
	"net/http"
	"strings"

	campaignhttp "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/transport/http"
)

// handleCastVote accepts anonymous ballots unless the ballot engine requires
// a voter. A supplied Authorization header must still be valid.
func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var voterID string
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		claims, err := s.sessions.Handler.VerifyTokenHandler(r.Context(), header)
		if err != nil {
			writeSessionDomainError(w, err)
			return
		}
		voterID = claims.RegistrationNumber
	}

	var req campaignhttp.CastVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	campaignID := pathID(r, "id")
	resp, err := s.campaigns.Handler.CastVoteHandler(r.Context(), campaignID, voterID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	s.metrics.VoteCast()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.CloseCampaignHandler(r.Context(), pathID(r, "id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	if !resp.AlreadyClosed {
		s.metrics.CampaignClosed()
	}
	writeJSON(w, http.StatusOK, resp)
}
