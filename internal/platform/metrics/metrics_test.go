package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func counterValue(t *testing.T, m *Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetricsCountDomainEvents(t *testing.T) {
	m := New()
	m.VoteCast()
	m.VoteCast()
	m.VoteCast()
	m.CampaignClosed()
	m.VoterRegistered()
	m.LoginAttempt(false)
	m.EventsPublished(3)
	m.EventsPublished(0)
	m.ObserveHTTPRequest("POST /register", http.StatusCreated)

	if got := counterValue(t, m, "proyectofinal_votes_cast_total"); got != 3 {
		t.Fatalf("votes cast = %v, want 3", got)
	}
	if got := counterValue(t, m, "proyectofinal_outbox_events_published_total"); got != 3 {
		t.Fatalf("events published = %v, want 3", got)
	}
	if got := counterValue(t, m, "proyectofinal_campaigns_closed_total"); got != 1 {
		t.Fatalf("campaigns closed = %v, want 1", got)
	}
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := New()
	m.VoterRegistered()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "proyectofinal_voter_registrations_total 1") {
		t.Fatalf("registration counter missing from exposition:\n%s", body)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.VoteCast()
	m.CampaignClosed()
	m.ObserveHTTPRequest("", http.StatusOK)
	if m.Registry() != nil {
		t.Fatalf("nil metrics should have no registry")
	}
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", rec.Code)
	}
}

func TestVotesCastIsASingleSeries(t *testing.T) {
	m := New()
	for i := 0; i < 50; i++ {
		m.VoteCast()
	}
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "proyectofinal_votes_cast_total" {
			continue
		}
		if len(family.GetMetric()) != 1 || len(family.GetMetric()[0].GetLabel()) != 0 {
			t.Fatalf("expected one unlabeled series, got %d", len(family.GetMetric()))
		}
		return
	}
	t.Fatalf("votes cast counter missing")
}
