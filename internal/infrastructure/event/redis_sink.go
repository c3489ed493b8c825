package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// RedisStreamAPI is the subset of the Redis client used by RedisStreamSink
type RedisStreamAPI interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink appends envelopes to a Redis stream, trimming it
// approximately to maxLen entries.
type RedisStreamSink struct {
	client RedisStreamAPI
	stream string
	maxLen int64
}

// RedisOptions holds connection settings for NewRedisClient
type RedisOptions struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisStreamSink creates a stream sink
func NewRedisStreamSink(client RedisStreamAPI, stream string, maxLen int64) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStreamSink) Name() string { return "redis" }

func (s *RedisStreamSink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"eventName":     envelope.EventName,
			"correlationId": envelope.CorrelationID,
			"envelope":      string(body),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redis xadd %s: %w", s.stream, err)
	}
	return nil
}

// Close closes the client when it owns a connection pool
func (s *RedisStreamSink) Close() error {
	if c, ok := s.client.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
