package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/errors"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

func seededStore() *Store {
	return NewStore([]entities.Campaign{{
		ID:     7,
		Title:  "Junta",
		Status: entities.CampaignStatusEnabled,
		Candidates: []entities.Candidate{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
		},
	}})
}

func TestStoreContinuesIDsAfterSeed(t *testing.T) {
	store := seededStore()
	created, err := store.CreateCampaign(context.Background(), entities.Campaign{Title: "nueva"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected id 8 after seed id 7, got %d", created.ID)
	}
	if created.Candidates == nil {
		t.Fatalf("expected empty, non-nil slate")
	}
}

func TestStoreConcurrentBallotsAreAllCounted(t *testing.T) {
	store := seededStore()
	const ballots = 200
	var wg sync.WaitGroup
	for i := 0; i < ballots; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.CastBallot(context.Background(), entities.Ballot{CampaignID: 7, CandidateID: int64(i%2 + 1)}); err != nil {
				t.Errorf("cast ballot: %v", err)
			}
		}(i)
	}
	wg.Wait()

	campaign, err := store.GetCampaign(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if campaign.Candidates[0].Votes != ballots/2 || campaign.Candidates[1].Votes != ballots/2 {
		t.Fatalf("lost votes: %+v", campaign.Candidates)
	}
}

// Every ballot either lands before the close and is in the snapshot, or is
// refused as closed.
func TestStoreCloseRacingBallotsKeepsSnapshotConsistent(t *testing.T) {
	store := seededStore()
	const ballots = 100
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int64
	)
	start := make(chan struct{})
	for i := 0; i < ballots; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := store.CastBallot(context.Background(), entities.Ballot{CampaignID: 7, CandidateID: 1})
			switch {
			case err == nil:
				mu.Lock()
				accepted++
				mu.Unlock()
			case errors.Is(err, domainerrors.ErrCampaignClosed):
			default:
				t.Errorf("unexpected ballot error: %v", err)
			}
		}()
	}

	var snapshot entities.Campaign
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		closed, _, err := store.CloseCampaign(context.Background(), 7, time.Now())
		if err != nil {
			t.Errorf("close: %v", err)
		}
		snapshot = closed
	}()
	close(start)
	wg.Wait()

	if snapshot.Candidates[0].Votes != accepted {
		t.Fatalf("snapshot has %d votes, %d ballots were accepted", snapshot.Candidates[0].Votes, accepted)
	}
	current, err := store.GetCampaign(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Candidates[0].Votes != accepted {
		t.Fatalf("votes changed after close: %d vs %d", current.Candidates[0].Votes, accepted)
	}
}

func TestStoreDeleteRacingBallots(t *testing.T) {
	store := seededStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CastBallot(context.Background(), entities.Ballot{CampaignID: 7, CandidateID: 2})
			if err != nil && !errors.Is(err, domainerrors.ErrCampaignNotFound) {
				t.Errorf("unexpected ballot error: %v", err)
			}
		}()
	}
	if err := store.DeleteCampaign(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	wg.Wait()

	if _, err := store.GetCampaign(context.Background(), 7); !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected deleted campaign to stay gone, got %v", err)
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	store := seededStore()
	campaign, err := store.GetCampaign(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	campaign.Candidates[0].Votes = 99

	again, err := store.GetCampaign(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Candidates[0].Votes != 0 {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func appendEvents(t *testing.T, store *Store, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		err := store.AppendOutbox(context.Background(), ports.EventEnvelope{
			EventID:    fmt.Sprintf("event-%d", i),
			EventType:  "ballot.vote_cast",
			OccurredAt: time.Now().UTC(),
			Data:       []byte(`{}`),
		})
		if err != nil {
			t.Fatalf("append outbox: %v", err)
		}
	}
}

func retainedOutbox(store *Store) (int, int) {
	store.outboxMu.Lock()
	defer store.outboxMu.Unlock()
	return len(store.outbox), len(store.outboxOrder)
}

func TestStoreDropsPublishedOutboxRows(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	appendEvents(t, store, 5000)

	for {
		pending, err := store.ListPendingOutbox(ctx, 100)
		if err != nil {
			t.Fatalf("list pending: %v", err)
		}
		if len(pending) == 0 {
			break
		}
		for _, message := range pending {
			if err := store.MarkOutboxPublished(ctx, message.OutboxID, time.Now()); err != nil {
				t.Fatalf("mark published: %v", err)
			}
		}
	}

	records, order := retainedOutbox(store)
	if records != 0 || order != 0 {
		t.Fatalf("expected empty outbox after relay, got records=%d order=%d", records, order)
	}
	if err := store.MarkOutboxPublished(ctx, "event-1", time.Now()); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected published row to be gone, got %v", err)
	}
}

func TestStoreOutboxCompactionKeepsPendingOrder(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	appendEvents(t, store, 10)

	// Publish every odd row while event-0 stays pending at the head.
	for i := 1; i < 10; i += 2 {
		if err := store.MarkOutboxPublished(ctx, fmt.Sprintf("event-%d", i), time.Now()); err != nil {
			t.Fatalf("mark published: %v", err)
		}
	}
	pending, err := store.ListPendingOutbox(ctx, 100)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	want := []string{"event-0", "event-2", "event-4", "event-6", "event-8"}
	if len(pending) != len(want) {
		t.Fatalf("expected %d pending rows, got %d", len(want), len(pending))
	}
	for i, message := range pending {
		if message.OutboxID != want[i] {
			t.Fatalf("pending[%d] = %s, want %s", i, message.OutboxID, want[i])
		}
	}
	if records, order := retainedOutbox(store); records != 5 || order > 2*records {
		t.Fatalf("expected compacted order, got records=%d order=%d", records, order)
	}
}
