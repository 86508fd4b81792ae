package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

type CastVoteCommand struct {
	CampaignID  int64
	CandidateID int64
	VoterID     string
}

// CastVoteUseCase is the ballot engine. Votes are admitted only while the
// campaign is enabled; a non-empty VoterID is limited to one ballot per
// campaign.
type CastVoteUseCase struct {
	Ballots      ports.BallotBox
	Outbox       ports.OutboxWriter
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	RequireVoter bool
	Logger       *slog.Logger
}

func (uc CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (entities.Candidate, error) {
	logger := application.ResolveLogger(uc.Logger)
	voterID := strings.TrimSpace(cmd.VoterID)
	if cmd.CandidateID == 0 {
		return entities.Candidate{}, domainerrors.ErrMissingSelection
	}
	if uc.RequireVoter && voterID == "" {
		return entities.Candidate{}, domainerrors.ErrVoterRequired
	}

	now := uc.now()
	candidate, err := uc.Ballots.CastBallot(ctx, entities.Ballot{
		CampaignID:  cmd.CampaignID,
		CandidateID: cmd.CandidateID,
		VoterID:     voterID,
		CastAt:      now,
	})
	if err != nil {
		logger.Warn("ballot rejected",
			"event", "ballot_cast_rejected",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", cmd.CampaignID,
			"candidate_id", cmd.CandidateID,
			"error", err.Error(),
		)
		return entities.Candidate{}, err
	}

	eventRecorder{outbox: uc.Outbox, idGen: uc.IDGenerator, logger: logger}.
		record(ctx, EventBallotCast, cmd.CampaignID, now, map[string]any{
			"campaign_id":  cmd.CampaignID,
			"candidate_id": candidate.ID,
			"votes":        candidate.Votes,
		})
	logger.Info("ballot cast",
		"event", "ballot_cast",
		"module", "balloting/campaign-service",
		"layer", "application",
		"campaign_id", cmd.CampaignID,
		"candidate_id", candidate.ID,
		"votes", candidate.Votes,
	)
	return candidate, nil
}

func (uc CastVoteUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
