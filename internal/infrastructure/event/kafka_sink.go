package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// KafkaProducer is the subset of *kafka.Producer used by KafkaSink
type KafkaProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaSink produces envelopes to a topic keyed by correlation id and waits
// for the broker acknowledgement.
type KafkaSink struct {
	producer        KafkaProducer
	topic           string
	deliveryTimeout time.Duration
}

// NewKafkaProducer creates a confluent producer for brokers
func NewKafkaProducer(brokers, clientID string) (*kafka.Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"client.id":         clientID,
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return p, nil
}

// NewKafkaSink creates a Kafka sink on top of producer
func NewKafkaSink(producer KafkaProducer, topic string, deliveryTimeout time.Duration) *KafkaSink {
	if deliveryTimeout <= 0 {
		deliveryTimeout = 5 * time.Second
	}
	return &KafkaSink{producer: producer, topic: topic, deliveryTimeout: deliveryTimeout}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	topic := s.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(envelope.CorrelationID),
		Value:          value,
		Timestamp:      envelope.OccurredAt,
		Headers: []kafka.Header{
			{Key: "eventName", Value: []byte(envelope.EventName)},
			{Key: "correlationId", Value: []byte(envelope.CorrelationID)},
		},
	}

	delivery := make(chan kafka.Event, 1)
	if err := s.producer.Produce(msg, delivery); err != nil {
		return fmt.Errorf("kafka produce to %s: %w", topic, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()

	select {
	case e := <-delivery:
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("kafka delivery to %s: %w", topic, m.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("kafka delivery to %s: %w", topic, ctx.Err())
	}
}

// Close flushes outstanding messages and closes the producer
func (s *KafkaSink) Close() error {
	if remaining := s.producer.Flush(int(s.deliveryTimeout.Milliseconds())); remaining > 0 {
		s.producer.Close()
		return fmt.Errorf("kafka: %d messages not delivered before close", remaining)
	}
	s.producer.Close()
	return nil
}
