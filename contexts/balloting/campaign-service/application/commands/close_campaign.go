package commands

import (
	"context"
	"log/slog"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

type CloseCampaignResult struct {
	Campaign      entities.Campaign
	Tally         []entities.TallyEntry
	AlreadyClosed bool
}

// CloseCampaignUseCase is the results publisher. Closing is idempotent and
// the closed event is emitted once, on the first close.
type CloseCampaignUseCase struct {
	Results     ports.ResultsRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CloseCampaignUseCase) Execute(ctx context.Context, campaignID int64) (CloseCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.now()

	campaign, alreadyClosed, err := uc.Results.CloseCampaign(ctx, campaignID, now)
	if err != nil {
		logger.Warn("campaign close failed",
			"event", "campaign_close_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return CloseCampaignResult{}, err
	}

	tally := campaign.Tally()
	if !alreadyClosed {
		results := make([]map[string]any, 0, len(tally))
		for _, entry := range tally {
			results = append(results, map[string]any{
				"nombre": entry.Name,
				"votos":  entry.Votes,
			})
		}
		eventRecorder{outbox: uc.Outbox, idGen: uc.IDGenerator, logger: logger}.
			record(ctx, EventCampaignClosed, campaignID, now, map[string]any{
				"campaign_id": campaignID,
				"title":       campaign.Title,
				"resultados":  results,
			})
	}

	logger.Info("campaign closed",
		"event", "campaign_closed",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", campaignID,
		"already_closed", alreadyClosed,
		"candidate_count", len(tally),
	)
	return CloseCampaignResult{
		Campaign:      campaign,
		Tally:         tally,
		AlreadyClosed: alreadyClosed,
	}, nil
}

func (uc CloseCampaignUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
