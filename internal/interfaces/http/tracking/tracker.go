// Package tracking records one event per controller action, tied to the
// request correlation id.
package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/infrastructure/logger"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Outcome values
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeFailure  = "failure"
)

// TrackedEvent describes what a controller action did
type TrackedEvent struct {
	Name        string
	UserMessage string
	Payload     any
	Outcome     string
	Err         error
}

// Success builds a successful event
func Success(name, userMessage string, payload any) TrackedEvent {
	return TrackedEvent{Name: name, UserMessage: userMessage, Payload: payload, Outcome: OutcomeSuccess}
}

// NotFound builds a not-found event
func NotFound(name, userMessage string, payload any) TrackedEvent {
	return TrackedEvent{Name: name, UserMessage: userMessage, Payload: payload, Outcome: OutcomeNotFound}
}

// Failure builds a failed event carrying err
func Failure(name, userMessage string, payload any, err error) TrackedEvent {
	return TrackedEvent{Name: name, UserMessage: userMessage, Payload: payload, Outcome: OutcomeFailure, Err: err}
}

// Payload is the body published for every tracked event
type Payload struct {
	Outcome     string     `json:"outcome"`
	UserMessage string     `json:"userMessage"`
	HTTP        HTTPInfo   `json:"http"`
	Payload     any        `json:"payload"`
	Error       *ErrorInfo `json:"error,omitempty"`
}

// HTTPInfo describes the request that produced the event
type HTTPInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	TraceID string `json:"traceId,omitempty"`
}

// ErrorInfo describes the error attached to a failed event
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Tracker publishes controller events. It never fails the request.
type Tracker struct {
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewTracker creates a Tracker
func NewTracker(publisher shared.EventPublisher, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{publisher: publisher, logger: logger}
}

// Track publishes ev for the current request and returns the correlation id
// to put in the response.
func (t *Tracker) Track(c *gin.Context, ev TrackedEvent) string {
	correlationID := ResolveCorrelationID(c)
	c.Set(middleware.CorrelationIDKey, correlationID)

	ctx := c.Request.Context()
	payload := Payload{
		Outcome:     ev.Outcome,
		UserMessage: ev.UserMessage,
		HTTP: HTTPInfo{
			Method:  c.Request.Method,
			Path:    c.Request.URL.Path,
			TraceID: logger.GetTraceID(ctx),
		},
		Payload: ev.Payload,
	}
	if ev.Err != nil {
		payload.Error = &ErrorInfo{Type: errorType(ev.Err), Message: ev.Err.Error()}
	}

	t.publish(ctx, ev.Name, payload, correlationID)
	return correlationID
}

func (t *Tracker) publish(ctx context.Context, name string, payload Payload, correlationID string) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("Event publisher panicked",
				zap.String("event_name", name),
				zap.String("correlation_id", correlationID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := t.publisher.Publish(ctx, name, payload, correlationID); err != nil {
		t.logger.Error("Failed to publish event",
			zap.String("event_name", name),
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
	}
}

// ResolveCorrelationID returns the inbound header, then the id stored by the
// correlation middleware, then a fresh 8 character upper-case id.
func ResolveCorrelationID(c *gin.Context) string {
	if id := middleware.SanitizeCorrelationID(c.GetHeader(middleware.CorrelationIDHeader)); id != "" {
		return id
	}
	if id := strings.TrimSpace(middleware.GetCorrelationID(c)); id != "" {
		return id
	}
	return strings.ToUpper(middleware.NewCorrelationID(8))
}

func errorType(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return fmt.Sprintf("%T", err)
}
