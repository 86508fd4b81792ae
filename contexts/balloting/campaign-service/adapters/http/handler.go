package httpadapter

import (
	"context"
	"log/slog"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	httptransport "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/transport/http"
)

type Handler struct {
	Registry  commands.RegistryUseCase
	Ballots   commands.CastVoteUseCase
	Results   commands.CloseCampaignUseCase
	Campaigns queries.CampaignQueryUseCase
	Logger    *slog.Logger
}

// CreateCampaignHandler godoc
// @Summary Create campaign
// @Description Creates a campaign with an empty candidate slate. Status defaults to enabled.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body httptransport.CreateCampaignRequest true "Campaign"
// @Success 201 {object} httptransport.CampaignResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /admin/campanias [post]
func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.Registry.CreateCampaign(ctx, commands.CreateCampaignCommand{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

// ListCampaignsHandler godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} httptransport.CampaignResponse
// @Router /admin/campanias [get]
func (h Handler) ListCampaignsHandler(ctx context.Context) ([]httptransport.CampaignResponse, error) {
	items, err := h.Campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]httptransport.CampaignResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, mapCampaign(item))
	}
	return resp, nil
}

// GetCampaignHandler godoc
// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign id"
// @Success 200 {object} httptransport.CampaignResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{id} [get]
func (h Handler) GetCampaignHandler(ctx context.Context, campaignID int64) (httptransport.CampaignResponse, error) {
	campaign, err := h.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

// DeleteCampaignHandler godoc
// @Summary Delete campaign
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign id"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{id} [delete]
func (h Handler) DeleteCampaignHandler(ctx context.Context, campaignID int64) (httptransport.MessageResponse, error) {
	if err := h.Registry.DeleteCampaign(ctx, campaignID); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Campaña eliminada"}, nil
}

// SetStatusHandler godoc
// @Summary Set campaign status
// @Description Overwrites the status. Accepts enabled, disabled, closed and the Spanish aliases.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign id"
// @Param request body httptransport.SetStatusRequest true "Status"
// @Success 200 {object} httptransport.CampaignResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{id}/estado [put]
func (h Handler) SetStatusHandler(
	ctx context.Context,
	campaignID int64,
	req httptransport.SetStatusRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.Registry.SetStatus(ctx, campaignID, req.Status)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

// ReplaceCandidatesHandler godoc
// @Summary Replace candidate slate
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign id"
// @Param request body httptransport.ReplaceCandidatesRequest true "Candidates"
// @Success 200 {object} httptransport.CampaignResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{id}/candidatos [post]
func (h Handler) ReplaceCandidatesHandler(
	ctx context.Context,
	campaignID int64,
	req httptransport.ReplaceCandidatesRequest,
) (httptransport.CampaignResponse, error) {
	inputs := make([]commands.CandidateInput, 0, len(req.Candidates))
	for _, candidate := range req.Candidates {
		inputs = append(inputs, commands.CandidateInput{
			ID:    int64(candidate.ID),
			Name:  candidate.Name,
			Votes: candidate.Votes,
		})
	}
	campaign, err := h.Registry.ReplaceCandidates(ctx, campaignID, inputs)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

// RemoveCandidateHandler godoc
// @Summary Remove candidate
// @Tags campaigns
// @Produce json
// @Param campaniaId path int true "Campaign id"
// @Param candidatoId path int true "Candidate id"
// @Success 200 {object} httptransport.CampaignResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{campaniaId}/candidatos/{candidatoId} [delete]
func (h Handler) RemoveCandidateHandler(
	ctx context.Context,
	campaignID int64,
	candidateID int64,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.Registry.RemoveCandidate(ctx, campaignID, candidateID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

// CastVoteHandler godoc
// @Summary Cast vote
// @Description Adds one vote to the selected candidate while the campaign is enabled.
// @Tags ballots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign id"
// @Param request body httptransport.CastVoteRequest true "Selection"
// @Success 200 {object} httptransport.VoteResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /votantes/campanias/{id}/votar [post]
func (h Handler) CastVoteHandler(
	ctx context.Context,
	campaignID int64,
	voterID string,
	req httptransport.CastVoteRequest,
) (httptransport.VoteResponse, error) {
	candidate, err := h.Ballots.Execute(ctx, commands.CastVoteCommand{
		CampaignID:  campaignID,
		CandidateID: int64(req.CandidateID),
		VoterID:     voterID,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	return httptransport.VoteResponse{
		Message:   "Voto registrado",
		Candidate: mapCandidate(candidate),
	}, nil
}

// CloseCampaignHandler godoc
// @Summary Close campaign and publish results
// @Tags ballots
// @Produce json
// @Param id path int true "Campaign id"
// @Success 200 {object} httptransport.CloseCampaignResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /admin/campanias/{id}/cerrar [put]
func (h Handler) CloseCampaignHandler(ctx context.Context, campaignID int64) (httptransport.CloseCampaignResponse, error) {
	result, err := h.Results.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CloseCampaignResponse{}, err
	}
	results := make([]httptransport.TallyEntryResponse, 0, len(result.Tally))
	for _, entry := range result.Tally {
		results = append(results, httptransport.TallyEntryResponse{
			Name:  entry.Name,
			Votes: entry.Votes,
		})
	}
	return httptransport.CloseCampaignResponse{
		Message:       "Votación cerrada",
		Results:       results,
		AlreadyClosed: result.AlreadyClosed,
	}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignResponse {
	candidates := make([]httptransport.CandidateResponse, 0, len(campaign.Candidates))
	for _, candidate := range campaign.Candidates {
		candidates = append(candidates, mapCandidate(candidate))
	}
	return httptransport.CampaignResponse{
		ID:          campaign.ID,
		Title:       campaign.Title,
		Description: campaign.Description,
		Status:      string(campaign.Status),
		Candidates:  candidates,
		CreatedAt:   campaign.CreatedAt,
		UpdatedAt:   campaign.UpdatedAt,
	}
}

func mapCandidate(candidate entities.Candidate) httptransport.CandidateResponse {
	return httptransport.CandidateResponse{
		ID:    candidate.ID,
		Name:  candidate.Name,
		Votes: candidate.Votes,
	}
}
