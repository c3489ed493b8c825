package shared

import (
	"context"
	"strings"
	"time"
)

// EventEnvelope is the wire form of every published event.
type EventEnvelope struct {
	EventName     string    `json:"eventName"`
	CorrelationID string    `json:"correlationId"`
	OccurredAt    time.Time `json:"occurredAt"`
	Payload       any       `json:"payload"`
}

// NewEventEnvelope builds an envelope stamped with the current UTC time.
// Both eventName and correlationID are mandatory.
func NewEventEnvelope(eventName, correlationID string, payload any) (EventEnvelope, error) {
	eventName = strings.TrimSpace(eventName)
	correlationID = strings.TrimSpace(correlationID)
	if eventName == "" || correlationID == "" {
		return EventEnvelope{}, ErrInvalidEnvelope
	}
	return EventEnvelope{
		EventName:     eventName,
		CorrelationID: correlationID,
		OccurredAt:    time.Now().UTC(),
		Payload:       payload,
	}, nil
}

// EventPublisher delivers event envelopes to one or more sinks.
type EventPublisher interface {
	// Publish wraps payload in an envelope and hands it to the sink(s).
	Publish(ctx context.Context, eventName string, payload any, correlationID string) error
}
