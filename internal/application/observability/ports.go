// Package observability answers read-only questions about the event pipeline:
// how many events were recorded and what is waiting on the queue.
package observability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/casepan/backend/internal/domain/shared"
)

// ErrQueueNotConfigured is returned by a QueueInspector without a queue
var ErrQueueNotConfigured = shared.NewDomainError("SERVICE_UNAVAILABLE", "Fila SQS não configurada.")

// RecordedEvent is one envelope read back from the event log. Only the
// fields needed for aggregation are decoded.
type RecordedEvent struct {
	EventName     string    `json:"eventName"`
	CorrelationID string    `json:"correlationId"`
	OccurredAt    time.Time `json:"occurredAt"`
	Payload       struct {
		Outcome string `json:"outcome"`
		HTTP    struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"http"`
	} `json:"payload"`
}

// TailResult holds the last lines of the event log
type TailResult struct {
	Events    []RecordedEvent
	LinesRead int
	Malformed int
}

// EventLogInfo describes the event log file
type EventLogInfo struct {
	Path         string     `json:"path"`
	Exists       bool       `json:"exists"`
	SizeBytes    int64      `json:"sizeBytes"`
	LastWriteUtc *time.Time `json:"lastWriteUtc,omitempty"`
}

// EventLog reads the persisted event log
type EventLog interface {
	Tail(ctx context.Context, lines int) (*TailResult, error)
	Info(ctx context.Context) (*EventLogInfo, error)
}

// QueueStats are approximate message counts for a queue
type QueueStats struct {
	QueueURL   string `json:"queueUrl"`
	Visible    int64  `json:"approximateNumberOfMessages"`
	NotVisible int64  `json:"approximateNumberOfMessagesNotVisible"`
}

// QueueMessage is a peeked queue message. Body is the raw envelope when it
// is valid JSON.
type QueueMessage struct {
	MessageID  string            `json:"messageId"`
	Body       json.RawMessage   `json:"body,omitempty"`
	RawBody    string            `json:"rawBody,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// QueueInspector peeks at the event queue without consuming it
type QueueInspector interface {
	Stats(ctx context.Context) (*QueueStats, error)
	Sample(ctx context.Context, n int) ([]QueueMessage, error)
}
