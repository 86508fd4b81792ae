package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rlopezl29/proyectofinal/internal/platform/config"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		ServiceName:          "proyectofinal-test",
		HTTPPort:             "0",
		StoreDriver:          config.StoreDriverMemory,
		TokenTTL:             time.Hour,
		BcryptCost:           4,
		CandidateCatalogPath: filepath.Join(t.TempDir(), "missing.yaml"),
		OutboxPollInterval:   10 * time.Millisecond,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func serve(t *testing.T, handler http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestMemoryAPIRelaysClosedResults(t *testing.T) {
	app, err := BuildAPI(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("build api: %v", err)
	}
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	handler := app.Server().Handler()
	steps := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/admin/campanias", `{"titulo":"Junta"}`, http.StatusCreated},
		{http.MethodPost, "/admin/campanias/1/candidatos", `{"candidatos":[{"id":1,"nombre":"A"}]}`, http.StatusOK},
		{http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":1}`, http.StatusOK},
		{http.MethodPut, "/admin/campanias/1/cerrar", "", http.StatusOK},
	}
	for _, step := range steps {
		if rr := serve(t, handler, step.method, step.path, step.body); rr.Code != step.status {
			t.Fatalf("%s %s: expected %d, got %d body=%s", step.method, step.path, step.status, rr.Code, rr.Body.String())
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		body := serve(t, handler, http.MethodGet, "/metrics", "").Body.String()
		if strings.Contains(body, "proyectofinal_results_events_consumed_total 1") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("closed results never reached the consumer:\n%s", body)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("api app did not stop")
	}
}

func TestWorkerRejectsMemoryDriver(t *testing.T) {
	if _, err := BuildWorker(context.Background(), memoryConfig(t), nil); err == nil {
		t.Fatalf("expected memory driver to be rejected")
	}
}

func TestSQLiteWorkerStopsOnCancel(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.StoreDriver = config.StoreDriverSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "worker.db")

	app, err := BuildWorker(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
}

func TestSigningSecretFallsBackToRandomKey(t *testing.T) {
	cfg := memoryConfig(t)
	first, err := signingSecret(cfg, discardLogger())
	if err != nil {
		t.Fatalf("signing secret: %v", err)
	}
	second, _ := signingSecret(cfg, discardLogger())
	if len(first) != 64 || first == second {
		t.Fatalf("expected distinct random keys, got %q and %q", first, second)
	}

	cfg.TokenSigningSecret = " fixed "
	if got, _ := signingSecret(cfg, discardLogger()); got != "fixed" {
		t.Fatalf("expected configured secret, got %q", got)
	}
}

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":5000",
		"8080":  ":8080",
		":9000": ":9000",
	}
	for input, want := range cases {
		if got := normalizeAddr(input); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", input, got, want)
		}
	}
}
