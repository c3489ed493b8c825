package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/casepan/backend/internal/domain/shared"
)

// FileSink appends each envelope as one JSON line to an NDJSON file.
type FileSink struct {
	path string
	mu   sync.Mutex
}

// NewFileSink creates a sink appending to path. Parent directories are
// created on first write.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string { return "file" }

// Path returns the file being appended to
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create event log dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	// A single write keeps the line whole even with other appenders on the file.
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("append event: %w", err)
	}
	return f.Close()
}
