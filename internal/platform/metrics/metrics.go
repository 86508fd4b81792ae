package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process counters. A nil *Metrics is valid and records
// nothing, so tests and tools can skip the registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	registrations    prometheus.Counter
	logins           *prometheus.CounterVec
	votesCast        prometheus.Counter
	campaignsClosed  prometheus.Counter
	eventsPublished  prometheus.Counter
	resultsDelivered prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "proyectofinal_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		}, []string{"route", "code"}),
		registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "proyectofinal_voter_registrations_total",
			Help: "voters registered",
		}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "proyectofinal_logins_total",
			Help: "login attempts by outcome",
		}, []string{"outcome"}),
		votesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "proyectofinal_votes_cast_total",
			Help: "ballots accepted across all campaigns",
		}),
		campaignsClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "proyectofinal_campaigns_closed_total",
			Help: "campaign results published on close",
		}),
		eventsPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "proyectofinal_outbox_events_published_total",
			Help: "outbox rows relayed to the event bus",
		}),
		resultsDelivered: factory.NewCounter(prometheus.CounterOpts{
			Name: "proyectofinal_results_events_consumed_total",
			Help: "campaign.closed events handled by the results consumer",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTPRequest(route string, code int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) VoterRegistered() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

func (m *Metrics) LoginAttempt(success bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if success {
		outcome = "accepted"
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// VoteCast counts one unlabeled series across all campaigns.
func (m *Metrics) VoteCast() {
	if m == nil {
		return
	}
	m.votesCast.Inc()
}

func (m *Metrics) CampaignClosed() {
	if m == nil {
		return
	}
	m.campaignsClosed.Inc()
}

func (m *Metrics) EventsPublished(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.eventsPublished.Add(float64(count))
}

func (m *Metrics) ResultsConsumed() {
	if m == nil {
		return
	}
	m.resultsDelivered.Inc()
}
