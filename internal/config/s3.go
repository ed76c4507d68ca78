// internal/config/s3.go
package config

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 configuration. Configured is false when any required
// credential is missing; callers fall back to local image storage.
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	Region        string
	PublicBaseURL string
	Configured    bool
}

// NewS3Config creates a new S3 configuration from environment variables.
func NewS3Config() (*S3Config, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	bucket := os.Getenv("AWS_S3_BUCKET")
	region := getEnv("AWS_S3_REGION", "us-east-1")

	if accessKey == "" || secretKey == "" || bucket == "" {
		return &S3Config{Configured: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        bucket,
		Region:        region,
		PublicBaseURL: os.Getenv("AWS_S3_BASE_URL"),
		Configured:    true,
	}, nil
}
