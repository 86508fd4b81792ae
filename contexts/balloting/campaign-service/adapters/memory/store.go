package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"

	"github.com/google/uuid"
)

// campaignSlot owns one campaign. Its mutex serializes every write to the
// campaign; removed marks slots unlinked by a concurrent delete.
type campaignSlot struct {
	mu       sync.Mutex
	campaign entities.Campaign
	voters   map[string]struct{}
	removed  bool
}

// Store keeps campaigns in process memory. The store mutex guards the slot
// map and the id counter only; campaign state is guarded per slot.
type Store struct {
	mu        sync.RWMutex
	lastID    int64
	campaigns map[int64]*campaignSlot

	// outbox holds pending rows only; published rows are dropped.
	outboxMu    sync.Mutex
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
}

func NewStore(seed []entities.Campaign) *Store {
	store := &Store{
		campaigns: make(map[int64]*campaignSlot, len(seed)),
		outbox:    make(map[string]ports.OutboxMessage),
	}
	for _, campaign := range seed {
		store.campaigns[campaign.ID] = &campaignSlot{
			campaign: campaign.Clone(),
			voters:   make(map[string]struct{}),
		}
		if campaign.ID > store.lastID {
			store.lastID = campaign.ID
		}
	}
	return store
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) (entities.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	campaign.ID = s.lastID
	if campaign.Candidates == nil {
		campaign.Candidates = []entities.Candidate{}
	}
	s.campaigns[campaign.ID] = &campaignSlot{
		campaign: campaign.Clone(),
		voters:   make(map[string]struct{}),
	}
	return campaign.Clone(), nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID int64) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := s.withCampaign(campaignID, func(slot *campaignSlot) error {
		campaign = slot.campaign.Clone()
		return nil
	})
	return campaign, err
}

func (s *Store) ListCampaigns(_ context.Context) ([]entities.Campaign, error) {
	s.mu.RLock()
	slots := make([]*campaignSlot, 0, len(s.campaigns))
	for _, slot := range s.campaigns {
		slots = append(slots, slot)
	}
	s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(slots))
	for _, slot := range slots {
		slot.mu.Lock()
		if !slot.removed {
			items = append(items, slot.campaign.Clone())
		}
		slot.mu.Unlock()
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) DeleteCampaign(_ context.Context, campaignID int64) error {
	s.mu.Lock()
	slot, ok := s.campaigns[campaignID]
	if !ok {
		s.mu.Unlock()
		return domainerrors.ErrCampaignNotFound
	}
	delete(s.campaigns, campaignID)
	s.mu.Unlock()

	slot.mu.Lock()
	slot.removed = true
	slot.mu.Unlock()
	return nil
}

func (s *Store) SetCampaignStatus(
	_ context.Context,
	campaignID int64,
	status entities.CampaignStatus,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := s.withCampaign(campaignID, func(slot *campaignSlot) error {
		slot.campaign.Status = status
		slot.campaign.UpdatedAt = updatedAt.UTC()
		campaign = slot.campaign.Clone()
		return nil
	})
	return campaign, err
}

func (s *Store) ReplaceCandidates(
	_ context.Context,
	campaignID int64,
	candidates []entities.Candidate,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := s.withCampaign(campaignID, func(slot *campaignSlot) error {
		if slot.campaign.Status == entities.CampaignStatusClosed {
			return domainerrors.ErrCampaignClosed
		}
		slot.campaign.Candidates = append([]entities.Candidate{}, candidates...)
		slot.campaign.UpdatedAt = updatedAt.UTC()
		campaign = slot.campaign.Clone()
		return nil
	})
	return campaign, err
}

func (s *Store) RemoveCandidate(
	_ context.Context,
	campaignID int64,
	candidateID int64,
	updatedAt time.Time,
) (entities.Campaign, error) {
	var campaign entities.Campaign
	err := s.withCampaign(campaignID, func(slot *campaignSlot) error {
		index := slot.campaign.CandidateIndex(candidateID)
		if index < 0 {
			return domainerrors.ErrCandidateNotFound
		}
		if slot.campaign.Status == entities.CampaignStatusClosed {
			return domainerrors.ErrCampaignClosed
		}
		candidates := slot.campaign.Candidates
		slot.campaign.Candidates = append(append([]entities.Candidate{}, candidates[:index]...), candidates[index+1:]...)
		slot.campaign.UpdatedAt = updatedAt.UTC()
		campaign = slot.campaign.Clone()
		return nil
	})
	return campaign, err
}

func (s *Store) CastBallot(_ context.Context, ballot entities.Ballot) (entities.Candidate, error) {
	var candidate entities.Candidate
	err := s.withCampaign(ballot.CampaignID, func(slot *campaignSlot) error {
		index, err := slot.campaign.AdmitVote(ballot.CandidateID)
		if err != nil {
			return err
		}
		if ballot.VoterID != "" {
			if _, voted := slot.voters[ballot.VoterID]; voted {
				return domainerrors.ErrAlreadyVoted
			}
			slot.voters[ballot.VoterID] = struct{}{}
		}
		slot.campaign.Candidates[index].Votes++
		candidate = slot.campaign.Candidates[index]
		return nil
	})
	return candidate, err
}

func (s *Store) CloseCampaign(_ context.Context, campaignID int64, closedAt time.Time) (entities.Campaign, bool, error) {
	var (
		campaign      entities.Campaign
		alreadyClosed bool
	)
	err := s.withCampaign(campaignID, func(slot *campaignSlot) error {
		alreadyClosed = slot.campaign.Status == entities.CampaignStatusClosed
		if !alreadyClosed {
			slot.campaign.Status = entities.CampaignStatusClosed
			slot.campaign.UpdatedAt = closedAt.UTC()
		}
		campaign = slot.campaign.Clone()
		return nil
	})
	return campaign, alreadyClosed, err
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}

	s.outboxMu.Lock()
	defer s.outboxMu.Unlock()
	if _, exists := s.outbox[outboxID]; exists {
		return nil
	}
	s.outbox[outboxID] = ports.OutboxMessage{
		OutboxID:     outboxID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      payload,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	s.outboxOrder = append(s.outboxOrder, outboxID)
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	s.outboxMu.Lock()
	defer s.outboxMu.Unlock()
	items := make([]ports.OutboxMessage, 0, limit)
	for _, outboxID := range s.outboxOrder {
		message, ok := s.outbox[outboxID]
		if !ok {
			continue
		}
		message.Payload = append([]byte(nil), message.Payload...)
		items = append(items, message)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.outboxMu.Lock()
	defer s.outboxMu.Unlock()
	outboxID = strings.TrimSpace(outboxID)
	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrInvalidInput
	}
	delete(s.outbox, outboxID)
	s.compactOutboxOrder()
	return nil
}

// compactOutboxOrder drops published ids from the front of the order, and
// rebuilds it once published ids left behind a pending head outnumber the
// pending ones. Callers hold outboxMu.
func (s *Store) compactOutboxOrder() {
	head := 0
	for head < len(s.outboxOrder) {
		if _, ok := s.outbox[s.outboxOrder[head]]; ok {
			break
		}
		head++
	}
	s.outboxOrder = s.outboxOrder[head:]
	if len(s.outboxOrder) == 0 {
		s.outboxOrder = nil
		return
	}
	if len(s.outboxOrder) <= 2*len(s.outbox) {
		return
	}
	order := make([]string, 0, len(s.outbox))
	for _, outboxID := range s.outboxOrder {
		if _, ok := s.outbox[outboxID]; ok {
			order = append(order, outboxID)
		}
	}
	s.outboxOrder = order
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) withCampaign(campaignID int64, fn func(slot *campaignSlot) error) error {
	s.mu.RLock()
	slot, ok := s.campaigns[campaignID]
	s.mu.RUnlock()
	if !ok {
		return domainerrors.ErrCampaignNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.removed {
		return domainerrors.ErrCampaignNotFound
	}
	return fn(slot)
}
