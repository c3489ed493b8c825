package observability

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Tail window bounds for Summarize
const (
	DefaultTail = 5000
	MinTail     = 1
	MaxTail     = 100000
)

// Outcome values written by the request tracker
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeFailure  = "failure"
)

// ErrInvalidTail is returned for a tail outside [MinTail, MaxTail]
var ErrInvalidTail = shared.NewDomainError("INVALID_INPUT",
	fmt.Sprintf("tail deve estar entre %d e %d.", MinTail, MaxTail))

// Counter aggregates events sharing a key
type Counter struct {
	Key      string `json:"key"`
	Total    int    `json:"total"`
	Success  int    `json:"success"`
	NotFound int    `json:"notFound"`
	Failure  int    `json:"failure"`
}

// VolumetrySummary is the result of Summarize
type VolumetrySummary struct {
	File        string    `json:"file"`
	Tail        int       `json:"tail"`
	LinesRead   int       `json:"linesRead"`
	Malformed   int       `json:"malformed"`
	TotalEvents int       `json:"totalEvents"`
	ByEvent     []Counter `json:"byEvent"`
	ByEndpoint  []Counter `json:"byEndpoint"`
}

// VolumetryService summarises recent traffic from the event log
type VolumetryService struct {
	log    EventLog
	logger *zap.Logger
}

// NewVolumetryService creates a VolumetryService
func NewVolumetryService(log EventLog, logger *zap.Logger) *VolumetryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VolumetryService{log: log, logger: logger}
}

// Summarize groups the last tail events by event name and by endpoint.
// A tail of 0 means DefaultTail.
func (s *VolumetryService) Summarize(ctx context.Context, tail int) (*VolumetrySummary, error) {
	if tail == 0 {
		tail = DefaultTail
	}
	if tail < MinTail || tail > MaxTail {
		return nil, ErrInvalidTail
	}

	info, err := s.log.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("event log info: %w", err)
	}

	summary := &VolumetrySummary{
		File:       info.Path,
		Tail:       tail,
		ByEvent:    []Counter{},
		ByEndpoint: []Counter{},
	}
	if !info.Exists {
		return summary, nil
	}

	result, err := s.log.Tail(ctx, tail)
	if err != nil {
		return nil, fmt.Errorf("tail event log: %w", err)
	}
	if result.Malformed > 0 {
		s.logger.Debug("Skipped malformed event log lines", zap.Int("malformed", result.Malformed))
	}

	summary.LinesRead = result.LinesRead
	summary.Malformed = result.Malformed
	summary.TotalEvents = len(result.Events)
	summary.ByEvent = countBy(result.Events, func(e RecordedEvent) string {
		return e.EventName
	})
	summary.ByEndpoint = countBy(result.Events, endpointKey)

	return summary, nil
}

// EventFile describes the event log file
func (s *VolumetryService) EventFile(ctx context.Context) (*EventLogInfo, error) {
	info, err := s.log.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("event log info: %w", err)
	}
	return info, nil
}

func endpointKey(e RecordedEvent) string {
	method := strings.ToUpper(strings.TrimSpace(e.Payload.HTTP.Method))
	path := strings.TrimSpace(e.Payload.HTTP.Path)
	if method == "" && path == "" {
		return "unknown"
	}
	return strings.TrimSpace(method + " " + path)
}

func countBy(events []RecordedEvent, key func(RecordedEvent) string) []Counter {
	groups := lo.GroupBy(events, key)

	counters := lo.MapToSlice(groups, func(k string, group []RecordedEvent) Counter {
		c := Counter{Key: k, Total: len(group)}
		for _, e := range group {
			switch e.Payload.Outcome {
			case OutcomeSuccess:
				c.Success++
			case OutcomeNotFound:
				c.NotFound++
			case OutcomeFailure:
				c.Failure++
			}
		}
		return c
	})

	sort.Slice(counters, func(i, j int) bool {
		if counters[i].Total != counters[j].Total {
			return counters[i].Total > counters[j].Total
		}
		return counters[i].Key < counters[j].Key
	})
	return counters
}
