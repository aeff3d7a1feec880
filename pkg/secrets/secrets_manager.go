package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// GetSecretValueAPI is the slice of the Secrets Manager client we use.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Client wraps the AWS Secrets Manager client.
type Client struct {
	svc    GetSecretValueAPI
	logger *zap.Logger
}

// NewClient uses the default AWS configuration chain (environment
// variables, shared config, IAM role).
func NewClient(ctx context.Context, logger *zap.Logger) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewClientWithAPI(secretsmanager.NewFromConfig(cfg), logger), nil
}

func NewClientWithAPI(api GetSecretValueAPI, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{svc: api, logger: logger.Named("secrets")}
}

// GetSecretString fetches secretARN and falls back to fallback when the ARN
// is empty or the lookup fails. It errors only when both come up empty.
func (c *Client) GetSecretString(ctx context.Context, secretARN, fallback string) (string, error) {
	if secretARN != "" {
		out, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretARN),
		})
		if err == nil && out.SecretString != nil && strings.TrimSpace(*out.SecretString) != "" {
			c.logger.Info("fetched secret from Secrets Manager", zap.String("secret_arn", secretARN))
			return strings.TrimSpace(*out.SecretString), nil
		}
		c.logger.Warn("failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secret_arn", secretARN),
			zap.Error(err))
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("secret not found via ARN %q or fallback value", secretARN)
}
