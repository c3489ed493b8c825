package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	cadastroapp "github.com/casepan/backend/internal/application/cadastro"
	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/infrastructure/persistence/memory"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type publishedEvent struct {
	Name          string
	Payload       tracking.Payload
	CorrelationID string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, name string, payload any, correlationID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	tp, _ := payload.(tracking.Payload)
	p.events = append(p.events, publishedEvent{Name: name, Payload: tp, CorrelationID: correlationID})
	return nil
}

func (p *recordingPublisher) last(t *testing.T) publishedEvent {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.events, "no event published")
	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// fakeLookup answers from a map keyed by normalised CEP
type fakeLookup struct {
	addresses map[string]*cadastro.PostalAddress
	err       error
	calls     int
}

func (f *fakeLookup) Lookup(_ context.Context, cep string) (*cadastro.PostalAddress, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.addresses[cep], nil
}

var errLookupDown = errors.New("viacep unavailable")

func newFakeLookup() *fakeLookup {
	return &fakeLookup{addresses: map[string]*cadastro.PostalAddress{
		"01001000": {
			Cep:        "01001-000",
			Logradouro: "Praça da Sé",
			Bairro:     "Sé",
			Localidade: "São Paulo",
			UF:         "SP",
		},
	}}
}

type testServer struct {
	router    *gin.Engine
	publisher *recordingPublisher
	lookup    *fakeLookup
	enderecos *memory.EnderecoRepository
	fisicas   *memory.PessoaFisicaRepository
	juridicas *memory.PessoaJuridicaRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		publisher: &recordingPublisher{},
		lookup:    newFakeLookup(),
		enderecos: memory.NewEnderecoRepository(),
		fisicas:   memory.NewPessoaFisicaRepository(),
		juridicas: memory.NewPessoaJuridicaRepository(),
	}
	tracker := tracking.NewTracker(ts.publisher, zaptest.NewLogger(t))

	enderecoService := cadastroapp.NewEnderecoService(ts.enderecos, ts.lookup)
	fisicaService := cadastroapp.NewPessoaFisicaService(ts.fisicas, ts.enderecos, ts.lookup)
	juridicaService := cadastroapp.NewPessoaJuridicaService(ts.juridicas, ts.enderecos, ts.lookup)

	ts.router = gin.New()
	ts.router.Use(middleware.CorrelationID())
	api := ts.router.Group("/api")
	NewEnderecoHandler(tracker, enderecoService).RegisterRoutes(api)
	NewPessoaFisicaHandler(tracker, fisicaService).RegisterRoutes(api)
	NewPessoaJuridicaHandler(tracker, juridicaService).RegisterRoutes(api)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok, w.Body.String())
	return data
}

func ptr[T any](v T) *T { return &v }
