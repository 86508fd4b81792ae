package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

type CreateCampaignCommand struct {
	Title       string
	Description string
	Status      string
}

type CandidateInput struct {
	ID    int64
	Name  string
	Votes int64
}

// RegistryUseCase covers the campaign lifecycle and candidate slate edits.
// SetStatus is an unconditional overwrite; slate edits are refused once a
// campaign is closed.
type RegistryUseCase struct {
	Campaigns   ports.CampaignRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc RegistryUseCase) CreateCampaign(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	status := entities.CampaignStatusEnabled
	if strings.TrimSpace(cmd.Status) != "" {
		parsed, ok := entities.ParseCampaignStatus(cmd.Status)
		if !ok {
			logger.Warn("campaign create rejected",
				"event", "campaign_create_invalid_status",
				"module", "balloting/campaign-service",
				"layer", "application",
				"status", cmd.Status,
			)
			return entities.Campaign{}, fmt.Errorf("%w: unknown status %q", domainerrors.ErrInvalidInput, cmd.Status)
		}
		status = parsed
	}

	now := uc.now()
	campaign, err := uc.Campaigns.CreateCampaign(ctx, entities.Campaign{
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		Status:      status,
		Candidates:  []entities.Candidate{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		logger.Error("campaign create failed",
			"event", "campaign_create_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}

	uc.events(logger).record(ctx, EventCampaignCreated, campaign.ID, now, map[string]any{
		"campaign_id": campaign.ID,
		"title":       campaign.Title,
		"status":      string(campaign.Status),
	})
	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaign.ID,
		"status", string(campaign.Status),
	)
	return campaign, nil
}

func (uc RegistryUseCase) DeleteCampaign(ctx context.Context, campaignID int64) error {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Campaigns.DeleteCampaign(ctx, campaignID); err != nil {
		logger.Warn("campaign delete failed",
			"event", "campaign_delete_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return err
	}
	uc.events(logger).record(ctx, EventCampaignDeleted, campaignID, uc.now(), map[string]any{
		"campaign_id": campaignID,
	})
	logger.Info("campaign deleted",
		"event", "campaign_deleted",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
	)
	return nil
}

func (uc RegistryUseCase) SetStatus(ctx context.Context, campaignID int64, rawStatus string) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	status, ok := entities.ParseCampaignStatus(rawStatus)
	if !ok {
		return entities.Campaign{}, fmt.Errorf("%w: unknown status %q", domainerrors.ErrInvalidInput, rawStatus)
	}

	now := uc.now()
	campaign, err := uc.Campaigns.SetCampaignStatus(ctx, campaignID, status, now)
	if err != nil {
		logger.Warn("campaign status change failed",
			"event", "campaign_status_change_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}
	uc.events(logger).record(ctx, EventCampaignStatusChanged, campaignID, now, map[string]any{
		"campaign_id": campaignID,
		"status":      string(status),
	})
	logger.Info("campaign status changed",
		"event", "campaign_status_changed",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"status", string(status),
	)
	return campaign, nil
}

// ReplaceCandidates swaps the whole slate. Missing vote counts start at zero.
func (uc RegistryUseCase) ReplaceCandidates(ctx context.Context, campaignID int64, inputs []CandidateInput) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	candidates := make([]entities.Candidate, 0, len(inputs))
	for _, input := range inputs {
		candidates = append(candidates, entities.Candidate{
			ID:    input.ID,
			Name:  strings.TrimSpace(input.Name),
			Votes: input.Votes,
		})
	}
	if err := entities.ValidateCandidates(candidates); err != nil {
		logger.Warn("candidate slate rejected",
			"event", "campaign_candidates_invalid",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}

	now := uc.now()
	campaign, err := uc.Campaigns.ReplaceCandidates(ctx, campaignID, candidates, now)
	if err != nil {
		logger.Warn("candidate slate replace failed",
			"event", "campaign_candidates_replace_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}
	uc.events(logger).record(ctx, EventCampaignCandidatesReplaced, campaignID, now, map[string]any{
		"campaign_id":     campaignID,
		"candidate_count": len(campaign.Candidates),
	})
	logger.Info("candidate slate replaced",
		"event", "campaign_candidates_replaced",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"candidate_count", len(campaign.Candidates),
	)
	return campaign, nil
}

func (uc RegistryUseCase) RemoveCandidate(ctx context.Context, campaignID int64, candidateID int64) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.now()
	campaign, err := uc.Campaigns.RemoveCandidate(ctx, campaignID, candidateID, now)
	if err != nil {
		logger.Warn("candidate remove failed",
			"event", "campaign_candidate_remove_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"candidate_id", candidateID,
			"error", err.Error(),
		)
		return entities.Campaign{}, err
	}
	uc.events(logger).record(ctx, EventCampaignCandidateRemoved, campaignID, now, map[string]any{
		"campaign_id":  campaignID,
		"candidate_id": candidateID,
	})
	logger.Info("candidate removed",
		"event", "campaign_candidate_removed",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"candidate_id", candidateID,
	)
	return campaign, nil
}

func (uc RegistryUseCase) events(logger *slog.Logger) eventRecorder {
	return eventRecorder{outbox: uc.Outbox, idGen: uc.IDGenerator, logger: logger}
}

func (uc RegistryUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
