package tracking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type published struct {
	name          string
	payload       any
	correlationID string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
	panics bool
}

func (p *recordingPublisher) Publish(_ context.Context, name string, payload any, correlationID string) error {
	if p.panics {
		panic("sink exploded")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{name: name, payload: payload, correlationID: correlationID})
	return p.err
}

func serve(t *testing.T, tracker *Tracker, withMiddleware bool, header string, ev TrackedEvent) (string, *httptest.ResponseRecorder) {
	t.Helper()
	router := gin.New()
	if withMiddleware {
		router.Use(middleware.CorrelationID())
	}
	var cid string
	router.POST("/api/enderecos", func(c *gin.Context) {
		cid = tracker.Track(c, ev)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/enderecos", nil)
	if header != "" {
		req.Header.Set(middleware.CorrelationIDHeader, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return cid, w
}

func TestTracker_Track_Success(t *testing.T) {
	pub := &recordingPublisher{}
	tracker := NewTracker(pub, zap.NewNop())

	cid, w := serve(t, tracker, true, "", Success("EnderecoCreated", "Endereço cadastrado com sucesso.", map[string]string{"id": "1"}))

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, "EnderecoCreated", ev.name)
	assert.Equal(t, cid, ev.correlationID)
	assert.Equal(t, w.Header().Get(middleware.CorrelationIDHeader), cid)

	payload := ev.payload.(Payload)
	assert.Equal(t, OutcomeSuccess, payload.Outcome)
	assert.Equal(t, "Endereço cadastrado com sucesso.", payload.UserMessage)
	assert.Equal(t, http.MethodPost, payload.HTTP.Method)
	assert.Equal(t, "/api/enderecos", payload.HTTP.Path)
	assert.Nil(t, payload.Error)
}

func TestTracker_Track_HeaderWins(t *testing.T) {
	pub := &recordingPublisher{}
	cid, _ := serve(t, NewTracker(pub, nil), true, "from-client", NotFound("EnderecoGetNotFound", "x", nil))

	assert.Equal(t, "from-client", cid)
	assert.Equal(t, "from-client", pub.events[0].correlationID)
	assert.Equal(t, OutcomeNotFound, pub.events[0].payload.(Payload).Outcome)
}

func TestTracker_Track_FallbackID(t *testing.T) {
	pub := &recordingPublisher{}
	cid, _ := serve(t, NewTracker(pub, nil), false, "", Success("EnderecoListOk", "x", nil))

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), cid)
}

func TestTracker_Track_Failure(t *testing.T) {
	pub := &recordingPublisher{}
	err := fmt.Errorf("create: %w", shared.NewDomainError("INVALID_CPF", "CPF inválido. Deve conter 11 dígitos."))

	serve(t, NewTracker(pub, nil), true, "", Failure("PessoaFisicaCreateFailed", "Houve um erro.", nil, err))

	payload := pub.events[0].payload.(Payload)
	assert.Equal(t, OutcomeFailure, payload.Outcome)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "INVALID_CPF", payload.Error.Type)
	assert.Contains(t, payload.Error.Message, "CPF inválido")

	pub = &recordingPublisher{}
	serve(t, NewTracker(pub, nil), true, "", Failure("X", "m", nil, errors.New("plain")))
	assert.Equal(t, "*errors.errorString", pub.events[0].payload.(Payload).Error.Type)
}

func TestTracker_Track_PublishErrorIsSwallowed(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	pub := &recordingPublisher{err: errors.New("disk full")}

	cid, w := serve(t, NewTracker(pub, zap.New(core)), true, "cid-x", Success("EnderecoCreated", "ok", nil))

	assert.Equal(t, "cid-x", cid)
	assert.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("Failed to publish event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "EnderecoCreated", entries[0].ContextMap()["event_name"])
	assert.Equal(t, "cid-x", entries[0].ContextMap()["correlation_id"])
}

func TestTracker_Track_PanicIsRecovered(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	cid, w := serve(t, NewTracker(&recordingPublisher{panics: true}, zap.New(core)), true, "cid-p", Success("X", "ok", nil))

	assert.Equal(t, "cid-p", cid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("Event publisher panicked").Len())
}
