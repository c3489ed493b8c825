package event

import (
	"context"
	"fmt"

	"github.com/casepan/backend/internal/infrastructure/config"
	"github.com/casepan/backend/internal/infrastructure/logger"
	"github.com/casepan/backend/internal/infrastructure/queue"
	"github.com/casepan/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// Builder constructs one sink kind from configuration
type Builder func(ctx context.Context, cfg *config.Config, log *zap.Logger) (Sink, error)

// DefaultBuilders maps every supported sink kind to its constructor
func DefaultBuilders() map[string]Builder {
	return map[string]Builder{
		config.SinkFile:  buildFileSink,
		config.SinkSQS:   buildSQSSink,
		config.SinkKafka: buildKafkaSink,
		config.SinkRedis: buildRedisSink,
		config.SinkS3:    buildS3Sink,
	}
}

// Build selects sinks from cfg.Events.Publisher. No sinks yields NoopSink, a
// single sink is returned as is and several are wrapped in a MultiSink.
// A sink that fails to construct is logged and left out.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) Sink {
	return BuildWith(ctx, cfg, log, DefaultBuilders())
}

// BuildWith is Build with custom constructors
func BuildWith(ctx context.Context, cfg *config.Config, log *zap.Logger, builders map[string]Builder) Sink {
	var sinks []Sink
	for _, kind := range cfg.Events.Sinks() {
		build, ok := builders[kind]
		if !ok {
			log.Warn("Unknown event sink ignored", zap.String("sink", kind))
			continue
		}
		sink, err := build(ctx, cfg, log)
		if err != nil {
			log.Error("Failed to create event sink", zap.String("sink", kind), zap.Error(err))
			continue
		}
		log.Info("Event sink enabled", zap.String("sink", sink.Name()))
		sinks = append(sinks, sink)
	}

	switch len(sinks) {
	case 0:
		return NoopSink{}
	case 1:
		return sinks[0]
	default:
		return NewMultiSink(logger.NewThrottler(log, cfg.Events.ThrottleInterval), sinks...)
	}
}

func buildFileSink(_ context.Context, cfg *config.Config, _ *zap.Logger) (Sink, error) {
	if cfg.Events.FilePath == "" {
		return nil, fmt.Errorf("events.file_path is required")
	}
	return NewFileSink(cfg.Events.FilePath), nil
}

func buildSQSSink(ctx context.Context, cfg *config.Config, _ *zap.Logger) (Sink, error) {
	client, err := queue.NewClient(ctx, &cfg.SQS)
	if err != nil {
		return nil, err
	}
	return NewSQSSink(client, cfg.SQS.QueueURL, cfg.SQS.Enabled, cfg.SQS.MessageGroupID), nil
}

func buildKafkaSink(_ context.Context, cfg *config.Config, _ *zap.Logger) (Sink, error) {
	producer, err := NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.ClientID)
	if err != nil {
		return nil, err
	}
	return NewKafkaSink(producer, cfg.Kafka.Topic, cfg.Kafka.DeliveryTimeout), nil
}

func buildRedisSink(_ context.Context, cfg *config.Config, _ *zap.Logger) (Sink, error) {
	client, err := NewRedisClient(RedisOptions{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	return NewRedisStreamSink(client, cfg.Redis.Stream, cfg.Redis.MaxLen), nil
}

func buildS3Sink(ctx context.Context, cfg *config.Config, log *zap.Logger) (Sink, error) {
	archive, err := storage.NewArchive(ctx, &cfg.S3, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := archive.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return NewS3Sink(archive, cfg.S3.Prefix), nil
}
