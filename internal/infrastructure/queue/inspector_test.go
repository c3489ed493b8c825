package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/casepan/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSQS struct {
	mock.Mock
}

func (m *mockSQS) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, _ ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sqs.GetQueueAttributesOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sqs.ReceiveMessageOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

const queueURL = "http://localhost:4566/000000000000/casepan-events"

func TestInspector_NotConfigured(t *testing.T) {
	i := NewInspector(new(mockSQS), "")

	_, err := i.Stats(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = i.Sample(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInspector_Stats(t *testing.T) {
	client := new(mockSQS)
	client.On("GetQueueAttributes", mock.Anything, mock.MatchedBy(func(in *sqs.GetQueueAttributesInput) bool {
		return aws.ToString(in.QueueUrl) == queueURL && len(in.AttributeNames) == 2
	})).Return(&sqs.GetQueueAttributesOutput{Attributes: map[string]string{
		"ApproximateNumberOfMessages":           "7",
		"ApproximateNumberOfMessagesNotVisible": "2",
	}}, nil)

	stats, err := NewInspector(client, queueURL).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, queueURL, stats.QueueURL)
	assert.Equal(t, int64(7), stats.Visible)
	assert.Equal(t, int64(2), stats.NotVisible)
}

func TestInspector_Stats_Error(t *testing.T) {
	client := new(mockSQS)
	client.On("GetQueueAttributes", mock.Anything, mock.Anything).Return(nil, errors.New("unreachable"))

	_, err := NewInspector(client, queueURL).Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestInspector_Sample(t *testing.T) {
	client := new(mockSQS)
	client.On("ReceiveMessage", mock.Anything, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
		return in.MaxNumberOfMessages == 10 && in.VisibilityTimeout == 0
	})).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
		{
			MessageId: aws.String("m-1"),
			Body:      aws.String(`{"eventName":"EnderecoCreated"}`),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"eventName": {DataType: aws.String("String"), StringValue: aws.String("EnderecoCreated")},
			},
		},
		{MessageId: aws.String("m-2"), Body: aws.String("not json")},
	}}, nil).Once()

	messages, err := NewInspector(client, queueURL).Sample(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "m-1", messages[0].MessageID)
	assert.JSONEq(t, `{"eventName":"EnderecoCreated"}`, string(messages[0].Body))
	assert.Equal(t, "EnderecoCreated", messages[0].Attributes["eventName"])
	assert.Equal(t, "not json", messages[1].RawBody)
	assert.Nil(t, messages[1].Body)
	client.AssertExpectations(t)
}

func TestInspector_Sample_ClampsLow(t *testing.T) {
	client := new(mockSQS)
	client.On("ReceiveMessage", mock.Anything, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
		return in.MaxNumberOfMessages == 1
	})).Return(&sqs.ReceiveMessageOutput{}, nil).Once()

	messages, err := NewInspector(client, queueURL).Sample(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
	client.AssertExpectations(t)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(context.Background(), nil)
	require.Error(t, err)

	client, err := NewClient(context.Background(), &config.SQSConfig{
		ServiceURL: "http://localhost:4566",
		Region:     "sa-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", client.Options().Region)
	assert.Equal(t, "http://localhost:4566", aws.ToString(client.Options().BaseEndpoint))
}
