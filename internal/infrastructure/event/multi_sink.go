package event

import (
	"context"
	"fmt"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/casepan/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MultiSink fans an envelope out to every child sink in order. A failing or
// panicking child is logged and skipped; Write never returns its error.
type MultiSink struct {
	sinks     []Sink
	throttler *logger.Throttler
}

// NewMultiSink creates a fan-out over sinks
func NewMultiSink(throttler *logger.Throttler, sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks, throttler: throttler}
}

func (m *MultiSink) Name() string { return "multi" }

// Sinks returns the child sinks
func (m *MultiSink) Sinks() []Sink {
	return m.sinks
}

func (m *MultiSink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	for _, sink := range m.sinks {
		if err := safeWrite(ctx, sink, envelope); err != nil {
			m.throttler.Warn(sink.Name(), "event sink failed",
				zap.String("sink", sink.Name()),
				zap.String("event_name", envelope.EventName),
				zap.String("correlation_id", envelope.CorrelationID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Close closes every child sink that holds resources
func (m *MultiSink) Close() error {
	return closeAll(m.sinks)
}

func safeWrite(ctx context.Context, sink Sink, envelope shared.EventEnvelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink %s panicked: %v", sink.Name(), r)
		}
	}()
	return sink.Write(ctx, envelope)
}
