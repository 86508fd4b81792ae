package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	campaignservice "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service"
	sessionservice "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service"
	voterdirectory "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory"
	"github.com/rlopezl29/proyectofinal/internal/platform/catalog"
	_ "github.com/rlopezl29/proyectofinal/internal/platform/httpserver/docs"
	"github.com/rlopezl29/proyectofinal/internal/platform/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Voters    voterdirectory.Module
	Sessions  sessionservice.Module
	Campaigns campaignservice.Module
	Catalog   []catalog.Candidate
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	Addr      string

	// AdminRequireToken puts every /admin route behind a valid session token.
	AdminRequireToken bool
}

type Server struct {
	mux     *http.ServeMux
	handler http.Handler
	logger  *slog.Logger
	addr    string
	http    *http.Server

	voters            voterdirectory.Module
	sessions          sessionservice.Module
	campaigns         campaignservice.Module
	catalog           []catalog.Candidate
	metrics           *metrics.Metrics
	adminRequireToken bool
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":5000"
	}
	items := opts.Catalog
	if items == nil {
		items = []catalog.Candidate{}
	}

	s := &Server{
		mux:               http.NewServeMux(),
		logger:            logger,
		addr:              addr,
		voters:            opts.Voters,
		sessions:          opts.Sessions,
		campaigns:         opts.Campaigns,
		catalog:           items,
		metrics:           opts.Metrics,
		adminRequireToken: opts.AdminRequireToken,
	}
	s.registerRoutes()
	s.handler = s.withCORS(s.withRequestLogging(s.withRecover(s.mux)))
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the full middleware chain, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.http.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.Handler())

	s.mux.HandleFunc("POST /register", s.handleRegisterVoter)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /votantes/me", s.handleCurrentVoter)

	s.mux.HandleFunc("GET /admin/candidatos", s.admin(s.handleListCatalog))
	s.mux.HandleFunc("POST /admin/campanias", s.admin(s.handleCreateCampaign))
	s.mux.HandleFunc("GET /admin/campanias", s.admin(s.handleListCampaigns))
	s.mux.HandleFunc("GET /admin/campanias/{id}", s.admin(s.handleGetCampaign))
	s.mux.HandleFunc("DELETE /admin/campanias/{id}", s.admin(s.handleDeleteCampaign))
	s.mux.HandleFunc("PUT /admin/campanias/{id}/estado", s.admin(s.handleSetCampaignStatus))
	s.mux.HandleFunc("POST /admin/campanias/{id}/candidatos", s.admin(s.handleReplaceCandidates))
	s.mux.HandleFunc("DELETE /admin/campanias/{campaniaId}/candidatos/{candidatoId}", s.admin(s.handleRemoveCandidate))
	s.mux.HandleFunc("PUT /admin/campanias/{id}/cerrar", s.admin(s.handleCloseCampaign))

	s.mux.HandleFunc("POST /votantes/campanias/{id}/votar", s.handleCastVote)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses a numeric path segment. Anything that is not a positive
// integer maps to 0, which no campaign or candidate uses, so lookups report
// not found.
func pathID(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}

// decodeJSON treats an empty body as an empty object so field-level checks
// still run and report the domain error.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return json.Unmarshal([]byte("{}"), dst)
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
