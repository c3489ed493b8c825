package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/casepan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SQSSendAPI is the subset of the SQS client used by SQSSink
type SQSSendAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSSink sends each envelope as one SQS message with eventName and
// correlationId message attributes.
type SQSSink struct {
	client         SQSSendAPI
	queueURL       string
	enabled        bool
	messageGroupID string
}

// NewSQSSink creates an SQS sink. A disabled sink or one without a queue URL
// accepts envelopes and drops them.
func NewSQSSink(client SQSSendAPI, queueURL string, enabled bool, messageGroupID string) *SQSSink {
	return &SQSSink{
		client:         client,
		queueURL:       queueURL,
		enabled:        enabled,
		messageGroupID: messageGroupID,
	}
}

func (s *SQSSink) Name() string { return "sqs" }

func (s *SQSSink) Write(ctx context.Context, envelope shared.EventEnvelope) error {
	if !s.enabled || s.queueURL == "" {
		return nil
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventName": {
				DataType:    aws.String("String"),
				StringValue: aws.String(envelope.EventName),
			},
			"correlationId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(envelope.CorrelationID),
			},
		},
	}
	if strings.HasSuffix(s.queueURL, ".fifo") {
		input.MessageGroupId = aws.String(s.messageGroupID)
		input.MessageDeduplicationId = aws.String(uuid.NewString())
	}

	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("sqs send message: %w", err)
	}
	return nil
}
