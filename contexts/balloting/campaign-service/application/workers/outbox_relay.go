package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

// OutboxRelay publishes stored campaign events to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce publishes one batch of pending rows in creation order. A row is
// marked published only after the bus accepts it; the first failure ends the
// cycle so the next tick retries from that row.
func (r OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("campaign outbox list failed",
			"event", "campaign_outbox_list_failed",
			"module", "balloting/campaign-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	published := 0
	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("campaign outbox decode failed",
				"event", "campaign_outbox_decode_failed",
				"module", "balloting/campaign-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return published, err
		}
		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("campaign outbox publish failed",
				"event", "campaign_outbox_publish_failed",
				"module", "balloting/campaign-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
			return published, err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("campaign outbox mark published failed",
				"event", "campaign_outbox_mark_published_failed",
				"module", "balloting/campaign-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return published, err
		}
		published++
	}

	logger.Info("campaign outbox relay cycle completed",
		"event", "campaign_outbox_relay_completed",
		"module", "balloting/campaign-service",
		"layer", "worker",
		"published_count", published,
	)
	return published, nil
}
