package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/casepan/backend/internal/application/observability"
)

const maxLineBytes = 1 << 20

// FileEventLog reads back the NDJSON file written by FileSink
type FileEventLog struct {
	path string
}

// NewFileEventLog creates a reader for path
func NewFileEventLog(path string) *FileEventLog {
	return &FileEventLog{path: path}
}

// Info reports whether the file exists, its size and last write time
func (l *FileEventLog) Info(ctx context.Context) (*observability.EventLogInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &observability.EventLogInfo{Path: l.path}
	st, err := os.Stat(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return info, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat event log: %w", err)
	}

	modified := st.ModTime().UTC()
	info.Exists = true
	info.SizeBytes = st.Size()
	info.LastWriteUtc = &modified
	return info, nil
}

// Tail decodes the last n lines of the file. Blank lines are ignored and
// lines that are not valid envelopes are counted as malformed.
func (l *FileEventLog) Tail(ctx context.Context, n int) (*observability.TailResult, error) {
	if n <= 0 {
		return &observability.TailResult{}, nil
	}

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &observability.TailResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	ring := make([]string, n)
	count := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if count%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ring[count%n] = line
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}

	kept := min(count, n)
	result := &observability.TailResult{
		LinesRead: kept,
		Events:    make([]observability.RecordedEvent, 0, kept),
	}
	start := count - kept
	for i := start; i < count; i++ {
		var e observability.RecordedEvent
		if err := json.Unmarshal([]byte(ring[i%n]), &e); err != nil || e.EventName == "" {
			result.Malformed++
			continue
		}
		result.Events = append(result.Events, e)
	}
	return result, nil
}

var _ observability.EventLog = (*FileEventLog)(nil)
