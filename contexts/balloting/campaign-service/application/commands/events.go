package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

const (
	EventCampaignCreated            = "campaign.created"
	EventCampaignDeleted            = "campaign.deleted"
	EventCampaignStatusChanged      = "campaign.status_changed"
	EventCampaignCandidatesReplaced = "campaign.candidates_replaced"
	EventCampaignCandidateRemoved   = "campaign.candidate_removed"
	EventBallotCast                 = "ballot.vote_cast"
	EventCampaignClosed             = "campaign.closed"
)

func newCampaignEnvelope(
	eventID string,
	eventType string,
	campaignID int64,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "campaign-service",
		CorrelationID:    eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "campaign_id",
		PartitionKey:     strconv.FormatInt(campaignID, 10),
		Data:             payload,
	}, nil
}

// eventRecorder appends campaign events to the outbox. The state change has
// already been stored when it runs, so failures are logged and not returned.
type eventRecorder struct {
	outbox ports.OutboxWriter
	idGen  ports.IDGenerator
	logger *slog.Logger
}

func (r eventRecorder) record(
	ctx context.Context,
	eventType string,
	campaignID int64,
	occurredAt time.Time,
	data map[string]any,
) {
	if r.outbox == nil || r.idGen == nil {
		return
	}
	eventID, err := r.idGen.NewID(ctx)
	if err == nil {
		var envelope ports.EventEnvelope
		envelope, err = newCampaignEnvelope(eventID, eventType, campaignID, occurredAt, data)
		if err == nil {
			err = r.outbox.AppendOutbox(ctx, envelope)
		}
	}
	if err != nil {
		r.logger.Error("campaign outbox append failed",
			"event", "campaign_outbox_append_failed",
			"module", "balloting/campaign-service",
			"layer", "application",
			"campaign_id", campaignID,
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}
