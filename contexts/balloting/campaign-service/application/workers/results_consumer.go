package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	application "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

const defaultResultsConsumerGroup = "campaign-results-cg"

// PublishedResults is the tally carried by a campaign.closed event.
type PublishedResults struct {
	EventID    string
	CampaignID int64
	Title      string
	Tally      []entities.TallyEntry
}

// ResultsConsumer subscribes to campaign.closed and hands each snapshot to
// OnPublished. Duplicate deliveries of one event id are dropped.
type ResultsConsumer struct {
	Subscriber    ports.EventSubscriber
	ConsumerGroup string
	OnPublished   func(context.Context, PublishedResults)
	Logger        *slog.Logger

	seen *seenEvents
}

func (c *ResultsConsumer) Start(ctx context.Context) error {
	logger := application.ResolveLogger(c.Logger)
	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultResultsConsumerGroup
	}
	if c.seen == nil {
		c.seen = newSeenEvents(1024)
	}
	if err := c.Subscriber.Subscribe(ctx, commands.EventCampaignClosed, group, c.handleClosed); err != nil {
		logger.Error("results consumer subscribe failed",
			"event", "campaign_results_consumer_subscribe_failed",
			"module", "balloting/campaign-service",
			"layer", "worker",
			"topic", commands.EventCampaignClosed,
			"consumer_group", group,
			"error", err.Error(),
		)
		return err
	}
	logger.Info("results consumer subscription active",
		"event", "campaign_results_consumer_started",
		"module", "balloting/campaign-service",
		"layer", "worker",
		"consumer_group", group,
	)
	return nil
}

func (c *ResultsConsumer) handleClosed(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)
	if !c.seen.add(event.EventID) {
		logger.Debug("duplicate results event skipped",
			"event", "campaign_results_duplicate_skipped",
			"module", "balloting/campaign-service",
			"layer", "worker",
			"event_id", event.EventID,
		)
		return nil
	}

	var payload struct {
		CampaignID int64  `json:"campaign_id"`
		Title      string `json:"title"`
		Results    []struct {
			Name  string `json:"nombre"`
			Votes int64  `json:"votos"`
		} `json:"resultados"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		logger.Error("results event decode failed",
			"event", "campaign_results_decode_failed",
			"module", "balloting/campaign-service",
			"layer", "worker",
			"event_id", event.EventID,
			"error", err.Error(),
		)
		return err
	}

	results := PublishedResults{
		EventID:    event.EventID,
		CampaignID: payload.CampaignID,
		Title:      payload.Title,
		Tally:      make([]entities.TallyEntry, 0, len(payload.Results)),
	}
	var total int64
	for _, entry := range payload.Results {
		results.Tally = append(results.Tally, entities.TallyEntry{Name: entry.Name, Votes: entry.Votes})
		total += entry.Votes
	}
	logger.Info("campaign results published",
		"event", "campaign_results_published",
		"module", "balloting/campaign-service",
		"layer", "worker",
		"campaign_id", results.CampaignID,
		"candidate_count", len(results.Tally),
		"total_votes", total,
	)
	if c.OnPublished != nil {
		c.OnPublished(ctx, results)
	}
	return nil
}
