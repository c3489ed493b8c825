package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/casepan/backend/internal/application/observability"
)

// Sample size bounds accepted by SQS ReceiveMessage
const (
	MinSample = 1
	MaxSample = 10
)

// ErrNotConfigured is returned when no queue URL is set
var ErrNotConfigured = observability.ErrQueueNotConfigured

// InspectAPI is the subset of the SQS client used by Inspector
type InspectAPI interface {
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
}

// Inspector reads queue depth and peeks at messages. Peeked messages stay
// visible because they are received with a zero visibility timeout.
type Inspector struct {
	client   InspectAPI
	queueURL string
}

// NewInspector creates an Inspector for queueURL
func NewInspector(client InspectAPI, queueURL string) *Inspector {
	return &Inspector{client: client, queueURL: queueURL}
}

// Stats returns approximate visible and in-flight message counts
func (i *Inspector) Stats(ctx context.Context) (*observability.QueueStats, error) {
	if i.client == nil || i.queueURL == "" {
		return nil, ErrNotConfigured
	}

	out, err := i.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(i.queueURL),
		AttributeNames: []types.QueueAttributeName{
			types.QueueAttributeNameApproximateNumberOfMessages,
			types.QueueAttributeNameApproximateNumberOfMessagesNotVisible,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sqs get queue attributes: %w", err)
	}

	return &observability.QueueStats{
		QueueURL:   i.queueURL,
		Visible:    attrInt(out.Attributes, types.QueueAttributeNameApproximateNumberOfMessages),
		NotVisible: attrInt(out.Attributes, types.QueueAttributeNameApproximateNumberOfMessagesNotVisible),
	}, nil
}

// Sample receives up to n messages, clamped to [MinSample, MaxSample]
func (i *Inspector) Sample(ctx context.Context, n int) ([]observability.QueueMessage, error) {
	if i.client == nil || i.queueURL == "" {
		return nil, ErrNotConfigured
	}
	n = min(MaxSample, max(MinSample, n))

	out, err := i.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(i.queueURL),
		MaxNumberOfMessages:   int32(n),
		VisibilityTimeout:     0,
		WaitTimeSeconds:       0,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, fmt.Errorf("sqs receive message: %w", err)
	}

	messages := make([]observability.QueueMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		msg := observability.QueueMessage{
			MessageID:  aws.ToString(m.MessageId),
			Attributes: make(map[string]string, len(m.MessageAttributes)),
		}
		body := aws.ToString(m.Body)
		if json.Valid([]byte(body)) {
			msg.Body = json.RawMessage(body)
		} else {
			msg.RawBody = body
		}
		for k, v := range m.MessageAttributes {
			msg.Attributes[k] = aws.ToString(v.StringValue)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func attrInt(attrs map[string]string, name types.QueueAttributeName) int64 {
	n, _ := strconv.ParseInt(attrs[string(name)], 10, 64)
	return n
}

var _ observability.QueueInspector = (*Inspector)(nil)
