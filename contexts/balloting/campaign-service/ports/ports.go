package ports

import (
	"context"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	"github.com/rlopezl29/proyectofinal/internal/shared/events"
	"github.com/rlopezl29/proyectofinal/internal/shared/outbox"
)

// CampaignRepository serializes writes per campaign. CreateCampaign assigns
// the id from a monotonic counter that never reuses deleted ids.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) (entities.Campaign, error)
	GetCampaign(ctx context.Context, campaignID int64) (entities.Campaign, error)
	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID int64) error
	SetCampaignStatus(ctx context.Context, campaignID int64, status entities.CampaignStatus, updatedAt time.Time) (entities.Campaign, error)
	ReplaceCandidates(ctx context.Context, campaignID int64, candidates []entities.Candidate, updatedAt time.Time) (entities.Campaign, error)
	RemoveCandidate(ctx context.Context, campaignID int64, candidateID int64, updatedAt time.Time) (entities.Campaign, error)
}

// BallotBox admits a ballot and increments the chosen candidate atomically
// with respect to other ballots and to closing.
type BallotBox interface {
	CastBallot(ctx context.Context, ballot entities.Ballot) (entities.Candidate, error)
}

// ResultsRepository closes a campaign. alreadyClosed reports whether the
// campaign was closed before this call.
type ResultsRepository interface {
	CloseCampaign(ctx context.Context, campaignID int64, closedAt time.Time) (campaign entities.Campaign, alreadyClosed bool, err error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type OutboxMessage = outbox.Message

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
