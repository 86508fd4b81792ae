package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	campaignservice "github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service"
	sessionservice "github.com/rlopezl29/proyectofinal/contexts/identity-access/session-service"
	voterdirectory "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory"
	"github.com/rlopezl29/proyectofinal/internal/platform/catalog"
	"github.com/rlopezl29/proyectofinal/internal/platform/metrics"
)

const registerBody = `{"numeroColegiado":"12345","nombre":"Ana Lopez","email":"ana@example.com","dpi":"1234567890123","fechaNacimiento":"1990-01-15","contrasena":"Password1"}`

func newTestServer(configure ...func(*Options)) *Server {
	opts := Options{
		Voters:    voterdirectory.NewInMemoryModule(nil, nil),
		Sessions:  sessionservice.NewJWTModule("test-secret", time.Hour, nil),
		Campaigns: campaignservice.NewInMemoryModule(nil, nil),
		Catalog:   []catalog.Candidate{{ID: 1, Name: "Ana"}},
		Metrics:   metrics.New(),
	}
	for _, fn := range configure {
		fn(&opts)
	}
	return New(opts)
}

func do(t *testing.T, server *Server, method string, path string, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, rr.Code, rr.Body.String())
	}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	decodeBody(t, rr, &body)
	if message != "" && body.Message != message {
		t.Fatalf("expected message %q, got %q", message, body.Message)
	}
}

func login(t *testing.T, server *Server) string {
	t.Helper()
	if rr := do(t, server, http.MethodPost, "/register", registerBody); rr.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rr.Code, rr.Body.String())
	}
	rr := do(t, server, http.MethodPost, "/login",
		`{"numeroColegiado":"12345","dpi":"1234567890123","fechaNacimiento":"1990-01-15","contrasena":"Password1"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rr.Code, rr.Body.String())
	}
	var resp LoginResponse
	decodeBody(t, rr, &resp)
	if resp.Token == "" || resp.Message != "Inicio de sesión exitoso" || resp.Voter.RegistrationNumber != "12345" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
	return resp.Token
}

func TestRegisterOmitsSecretAndRejectsDuplicates(t *testing.T) {
	server := newTestServer()
	rr := do(t, server, http.MethodPost, "/register", registerBody)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "Password1") || strings.Contains(rr.Body.String(), "contrasena") {
		t.Fatalf("secret leaked in response: %s", rr.Body.String())
	}

	expectError(t, do(t, server, http.MethodPost, "/register", registerBody),
		http.StatusBadRequest, "El DPI o email ya están registrados.")
}

func TestRegisterValidationMessages(t *testing.T) {
	cases := []struct {
		body    string
		message string
	}{
		{`{"numeroColegiado":"12345","email":"a@x.com","dpi":"123","fechaNacimiento":"1990-01-15","contrasena":"Password1"}`, "DPI inválido."},
		{`{"numeroColegiado":"12","email":"a@x.com","dpi":"1234567890123","fechaNacimiento":"1990-01-15","contrasena":"Password1"}`, "Número de colegiado inválido."},
		{`{"numeroColegiado":"12345","email":"a@x.com","dpi":"1234567890123","fechaNacimiento":"2020-01-15","contrasena":"Password1"}`, "Debe ser mayor de edad."},
		{`{"numeroColegiado":"12345","email":"a@x.com","dpi":"1234567890123","fechaNacimiento":"1990-01-15","contrasena":"password"}`,
			"La contraseña debe tener al menos 8 caracteres, incluyendo una mayúscula, una minúscula y un número."},
	}
	for _, tc := range cases {
		expectError(t, do(t, newTestServer(), http.MethodPost, "/register", tc.body), http.StatusBadRequest, tc.message)
	}
	expectError(t, do(t, newTestServer(), http.MethodPost, "/register", `{"dpi":`), http.StatusBadRequest, msgInvalidJSON)
}

func TestLoginAndCurrentVoter(t *testing.T) {
	server := newTestServer()
	token := login(t, server)

	rr := do(t, server, http.MethodGet, "/votantes/me", "", "Authorization", "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = do(t, server, http.MethodGet, "/votantes/me", "", "Authorization", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected raw token header to be accepted, got %d", rr.Code)
	}

	expectError(t, do(t, server, http.MethodGet, "/votantes/me", ""), http.StatusForbidden, msgMissingToken)
	expectError(t, do(t, server, http.MethodGet, "/votantes/me", "", "Authorization", "Bearer nope"),
		http.StatusUnauthorized, msgInvalidToken)

	expectError(t, do(t, server, http.MethodPost, "/login",
		`{"numeroColegiado":"12345","dpi":"1234567890123","fechaNacimiento":"1990-01-15","contrasena":"Wrong1234"}`),
		http.StatusBadRequest, msgBadCredentials)
}

func TestCampaignFlowOverHTTP(t *testing.T) {
	server := newTestServer()

	rr := do(t, server, http.MethodPost, "/admin/campanias", `{"titulo":"Junta","descripcion":"2026"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rr.Code, rr.Body.String())
	}
	var campaign struct {
		ID         int64  `json:"id"`
		Status     string `json:"estado"`
		Candidates []any  `json:"candidatos"`
	}
	decodeBody(t, rr, &campaign)
	if campaign.ID != 1 || campaign.Status != "enabled" || campaign.Candidates == nil {
		t.Fatalf("unexpected campaign: %+v (%s)", campaign, rr.Body.String())
	}

	rr = do(t, server, http.MethodPost, "/admin/campanias/1/candidatos",
		`{"candidatos":[{"id":1,"nombre":"A"},{"id":2,"nombre":"B"}]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("replace: %d %s", rr.Code, rr.Body.String())
	}
	for _, body := range []string{`{"candidatoId":1}`, `{"candidatoId":"1"}`, `{"candidatoId":1}`} {
		rr = do(t, server, http.MethodPost, "/votantes/campanias/1/votar", body)
		if rr.Code != http.StatusOK {
			t.Fatalf("vote: %d %s", rr.Code, rr.Body.String())
		}
	}
	var vote struct {
		Message   string `json:"mensaje"`
		Candidate struct {
			Votes int64 `json:"votos"`
		} `json:"candidato"`
	}
	decodeBody(t, rr, &vote)
	if vote.Message != "Voto registrado" || vote.Candidate.Votes != 3 {
		t.Fatalf("unexpected vote response: %+v", vote)
	}

	rr = do(t, server, http.MethodPut, "/admin/campanias/1/cerrar", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("close: %d %s", rr.Code, rr.Body.String())
	}
	var closed struct {
		Message string `json:"mensaje"`
		Results []struct {
			Name  string `json:"nombre"`
			Votes int64  `json:"votos"`
		} `json:"resultados"`
	}
	decodeBody(t, rr, &closed)
	if closed.Message != "Votación cerrada" || len(closed.Results) != 2 ||
		closed.Results[0].Name != "A" || closed.Results[0].Votes != 3 || closed.Results[1].Votes != 0 {
		t.Fatalf("unexpected close response: %s", rr.Body.String())
	}

	expectError(t, do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":2}`),
		http.StatusConflict, "")

	rr = do(t, server, http.MethodDelete, "/admin/campanias/1", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Campaña eliminada") {
		t.Fatalf("delete: %d %s", rr.Code, rr.Body.String())
	}
	expectError(t, do(t, server, http.MethodGet, "/admin/campanias/1", ""), http.StatusNotFound, msgCampaignNotFound)
}

func TestCampaignErrorMapping(t *testing.T) {
	server := newTestServer()
	do(t, server, http.MethodPost, "/admin/campanias", `{"titulo":"Junta"}`)

	expectError(t, do(t, server, http.MethodGet, "/admin/campanias/abc", ""), http.StatusNotFound, msgCampaignNotFound)
	expectError(t, do(t, server, http.MethodPost, "/admin/campanias/9/candidatos", `{"candidatos":{}}`),
		http.StatusBadRequest, "Candidatos debe ser un arreglo.")
	expectError(t, do(t, server, http.MethodPost, "/admin/campanias/9/candidatos", `{"candidatos":[]}`),
		http.StatusNotFound, msgCampaignNotFound)
	expectError(t, do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{}`),
		http.StatusBadRequest, "Debe seleccionar un candidato")
	expectError(t, do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":5}`),
		http.StatusNotFound, msgCandidateNotFound)
	expectError(t, do(t, server, http.MethodDelete, "/admin/campanias/1/candidatos/5", ""),
		http.StatusNotFound, msgCandidateNotFound)
	expectError(t, do(t, server, http.MethodPut, "/admin/campanias/1/estado", `{"estado":"pausada"}`),
		http.StatusBadRequest, "")
	expectError(t, do(t, server, http.MethodDelete, "/admin/campanias/7", ""), http.StatusNotFound, msgCampaignNotFound)
}

func TestVoteWithTokenIsLimitedToOneBallot(t *testing.T) {
	server := newTestServer()
	token := login(t, server)
	do(t, server, http.MethodPost, "/admin/campanias", `{"titulo":"Junta"}`)
	do(t, server, http.MethodPost, "/admin/campanias/1/candidatos", `{"candidatos":[{"id":1,"nombre":"A"}]}`)

	if rr := do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":1}`, "Authorization", token); rr.Code != http.StatusOK {
		t.Fatalf("first vote: %d %s", rr.Code, rr.Body.String())
	}
	expectError(t, do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":1}`, "Authorization", token),
		http.StatusConflict, "")
	expectError(t, do(t, server, http.MethodPost, "/votantes/campanias/1/votar", `{"candidatoId":1}`, "Authorization", "bad"),
		http.StatusUnauthorized, msgInvalidToken)
}

func TestAdminRoutesRequireTokenWhenConfigured(t *testing.T) {
	server := newTestServer(func(opts *Options) { opts.AdminRequireToken = true })
	expectError(t, do(t, server, http.MethodGet, "/admin/campanias", ""), http.StatusForbidden, msgMissingToken)

	token := login(t, server)
	rr := do(t, server, http.MethodGet, "/admin/campanias", "", "Authorization", "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected admin access with token, got %d", rr.Code)
	}
}

func TestCatalogHealthMetricsAndCORS(t *testing.T) {
	server := newTestServer()

	rr := do(t, server, http.MethodGet, "/admin/candidatos", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"nombre":"Ana"`) {
		t.Fatalf("catalog: %d %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS header")
	}
	if rr := do(t, server, http.MethodOptions, "/admin/campanias", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", rr.Code)
	}
	if rr := do(t, server, http.MethodGet, "/healthz", ""); rr.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rr.Code)
	}
	rr = do(t, server, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "proyectofinal_http_requests_total") {
		t.Fatalf("metrics: %d %s", rr.Code, rr.Body.String())
	}
}

func TestRecoverReturnsInternalError(t *testing.T) {
	server := newTestServer()
	server.mux.HandleFunc("GET /panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	expectError(t, do(t, server, http.MethodGet, "/panic", ""), http.StatusInternalServerError, msgInternal)
}

func TestStatusAliasesAreReportedInCanonicalForm(t *testing.T) {
	server := newTestServer()
	do(t, server, http.MethodPost, "/admin/campanias", `{"titulo":"Junta","estado":"habilitada"}`)

	rr := do(t, server, http.MethodPut, "/admin/campanias/1/estado", `{"estado":"deshabilitada"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("set status: %d %s", rr.Code, rr.Body.String())
	}
	var campaign struct {
		Status string `json:"estado"`
	}
	decodeBody(t, rr, &campaign)
	if campaign.Status != "disabled" {
		t.Fatalf("expected canonical status, got %q", campaign.Status)
	}
}
