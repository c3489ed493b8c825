package event

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/casepan/backend/internal/domain/shared"
)

// ObjectWriter stores a blob under a key
type ObjectWriter interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
}

// S3Sink archives every envelope as its own JSON object under
// <prefix>/yyyy/mm/dd/<unix-nanos>-<event>-<correlation>.json
type S3Sink struct {
	writer ObjectWriter
	prefix string
}

// NewS3Sink creates an archive sink
func NewS3Sink(writer ObjectWriter, prefix string) *S3Sink {
	return &S3Sink{writer: writer, prefix: prefix}
}

func (s *S3Sink) Name() string { return "s3" }

func (s *S3Sink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := s.writer.PutObject(ctx, s.Key(envelope), "application/json", body); err != nil {
		return fmt.Errorf("archive event: %w", err)
	}
	return nil
}

// Key returns the object key for envelope
func (s *S3Sink) Key(envelope shared.EventEnvelope) string {
	t := envelope.OccurredAt.UTC()
	name := fmt.Sprintf("%d-%s-%s.json", t.UnixNano(), envelope.EventName, envelope.CorrelationID)
	return path.Join(s.prefix, t.Format("2006"), t.Format("01"), t.Format("02"), name)
}
