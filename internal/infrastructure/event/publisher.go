package event

import (
	"context"
	"errors"
	"io"

	"github.com/casepan/backend/internal/domain/shared"
)

// Sink writes event envelopes to a single destination.
type Sink interface {
	// Name identifies the sink in logs, e.g. "file" or "sqs".
	Name() string
	Write(ctx context.Context, envelope shared.EventEnvelope) error
}

// Publisher adapts a Sink to shared.EventPublisher by building the envelope.
type Publisher struct {
	sink Sink
}

// NewPublisher wraps sink. A nil sink publishes nowhere.
func NewPublisher(sink Sink) *Publisher {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Publisher{sink: sink}
}

// Publish builds an envelope and writes it to the sink
func (p *Publisher) Publish(ctx context.Context, eventName string, payload any, correlationID string) error {
	envelope, err := shared.NewEventEnvelope(eventName, correlationID, payload)
	if err != nil {
		return err
	}
	return p.sink.Write(ctx, envelope)
}

// Sink returns the underlying sink
func (p *Publisher) Sink() Sink {
	return p.sink
}

// Close releases resources held by the sink, if any
func (p *Publisher) Close() error {
	if c, ok := p.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NoopSink discards every envelope
type NoopSink struct{}

func (NoopSink) Name() string { return "noop" }

func (NoopSink) Write(context.Context, shared.EventEnvelope) error { return nil }

func closeAll(sinks []Sink) error {
	var errs []error
	for _, s := range sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

var _ shared.EventPublisher = (*Publisher)(nil)
