package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/application/workers"
	"github.com/rlopezl29/proyectofinal/internal/platform/catalog"
	"github.com/rlopezl29/proyectofinal/internal/platform/config"
	"github.com/rlopezl29/proyectofinal/internal/platform/httpserver"
	"github.com/rlopezl29/proyectofinal/internal/platform/messaging"
	"github.com/rlopezl29/proyectofinal/internal/platform/metrics"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const (
	busBuffer       = 256
	relayBatchSize  = 100
	shutdownTimeout = 10 * time.Second
)

type APIApp struct {
	server *httpserver.Server
	stores stores
	events *eventPipeline
	logger *slog.Logger
}

type WorkerApp struct {
	stores stores
	events *eventPipeline
	logger *slog.Logger
}

// BuildAPI wires the HTTP server. With the memory driver the outbox only
// exists in this process, so the API also runs the relay and the results
// consumer; persistent drivers leave that to the worker.
func BuildAPI(ctx context.Context, cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "process", "api")

	items, err := catalog.Load(cfg.CandidateCatalogPath)
	if err != nil {
		return nil, err
	}
	built, err := buildStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	app := &APIApp{
		server: httpserver.New(httpserver.Options{
			Voters:            built.voters,
			Sessions:          built.sessions,
			Campaigns:         built.campaigns,
			Catalog:           items,
			Metrics:           m,
			Logger:            logger,
			Addr:              normalizeAddr(cfg.HTTPPort),
			AdminRequireToken: cfg.AdminRequireToken,
		}),
		stores: built,
		logger: logger,
	}
	if !cfg.Persistent() {
		app.events = newEventPipeline(built, cfg.OutboxPollInterval, m, logger)
	}
	return app, nil
}

// BuildWorker wires the outbox relay for a persistent store.
func BuildWorker(ctx context.Context, cfg config.Config, logger *slog.Logger) (*WorkerApp, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "process", "worker")
	if !cfg.Persistent() {
		return nil, errors.New("worker needs STORE_DRIVER=postgres or sqlite; the memory outbox is drained by the api process")
	}

	built, err := buildStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &WorkerApp{
		stores: built,
		events: newEventPipeline(built, cfg.OutboxPollInterval, metrics.New(), logger),
		logger: logger,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"in_process_relay", a.events != nil,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if a.events != nil {
		if err := a.events.start(runCtx, &wg); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.server.Start()
	}()

	var err error
	select {
	case err = <-serveErr:
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		err = a.server.Shutdown(shutdownCtx)
		stop()
		if startErr := <-serveErr; err == nil {
			err = startErr
		}
	}

	cancel()
	wg.Wait()
	if a.events != nil {
		a.events.bus.Wait()
	}
	a.logger.Info("api app stopped",
		"event", "bootstrap_api_stopped",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return err
}

func (a *APIApp) Server() *httpserver.Server {
	return a.server
}

func (a *APIApp) Close() error {
	return a.stores.close()
}

func (w *WorkerApp) Run(ctx context.Context) error {
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.events.interval.String(),
	)

	var wg sync.WaitGroup
	if err := w.events.start(ctx, &wg); err != nil {
		return err
	}
	<-ctx.Done()
	wg.Wait()
	w.events.bus.Wait()
	return nil
}

func (w *WorkerApp) Close() error {
	return w.stores.close()
}

// eventPipeline drains the campaign outbox onto the in-process bus and
// consumes published results.
type eventPipeline struct {
	bus      *messaging.Bus
	relay    workers.OutboxRelay
	consumer *workers.ResultsConsumer
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func newEventPipeline(built stores, interval time.Duration, m *metrics.Metrics, logger *slog.Logger) *eventPipeline {
	bus := messaging.NewBus(busBuffer, logger)
	p := &eventPipeline{
		bus: bus,
		relay: workers.OutboxRelay{
			Outbox:    built.outbox,
			Publisher: bus,
			Clock:     built.clock,
			BatchSize: relayBatchSize,
			Logger:    logger,
		},
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
	p.consumer = &workers.ResultsConsumer{
		Subscriber: bus,
		OnPublished: func(context.Context, workers.PublishedResults) {
			m.ResultsConsumed()
		},
		Logger: logger,
	}
	return p
}

func (p *eventPipeline) start(ctx context.Context, wg *sync.WaitGroup) error {
	if err := p.consumer.Start(ctx); err != nil {
		return err
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.relayLoop(ctx)
	}()
	return nil
}

// relayLoop keeps polling after a failed cycle; the unpublished rows stay
// pending and are retried on the next tick.
func (p *eventPipeline) relayLoop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		published, err := p.relay.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			p.logger.Warn("outbox relay cycle failed",
				"event", "bootstrap_outbox_relay_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
		p.metrics.EventsPublished(published)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":5000"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
