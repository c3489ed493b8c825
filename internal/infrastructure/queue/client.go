// Package queue builds the SQS client and inspects the event queue.
package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/casepan/backend/internal/infrastructure/config"
)

// NewClient creates an SQS client. When ServiceURL is set (LocalStack) the
// client targets it with the configured keys, falling back to "test"/"test".
func NewClient(ctx context.Context, cfg *config.SQSConfig) (*sqs.Client, error) {
	if cfg == nil {
		return nil, errors.New("sqs configuration is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	switch {
	case cfg.AccessKey != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	case cfg.ServiceURL != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.ServiceURL != "" {
			o.BaseEndpoint = aws.String(cfg.ServiceURL)
		}
	}), nil
}
