package httpserver

import (
	"errors"
	"net/http"

	campaignhttp "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/transport/http"
)

func (s *Server) handleListCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	resp, err := s.campaigns.Handler.CreateCampaignHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ListCampaignsHandler(r.Context())
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), pathID(r, "id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.DeleteCampaignHandler(r.Context(), pathID(r, "id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.SetStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	resp, err := s.campaigns.Handler.SetStatusHandler(r.Context(), pathID(r, "id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReplaceCandidates rejects a non-array payload before the campaign is
// looked up.
func (s *Server) handleReplaceCandidates(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.ReplaceCandidatesRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, campaignhttp.ErrCandidatesNotArray) {
			writeCampaignDomainError(w, err)
			return
		}
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", msgInvalidJSON)
		return
	}
	resp, err := s.campaigns.Handler.ReplaceCandidatesHandler(r.Context(), pathID(r, "id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveCandidate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.RemoveCandidateHandler(
		r.Context(),
		pathID(r, "campaniaId"),
		pathID(r, "candidatoId"),
	)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
