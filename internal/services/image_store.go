package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"kemisemail/internal/config"
)

// ImageStore persists an optimized image and returns its public URL for
// embedding in the campaign HTML.
type ImageStore interface {
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// S3ImageStore uploads images to an S3 bucket under images/.
type S3ImageStore struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		client:        cfg.Client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

func (s *S3ImageStore) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	key := path.Join("images", filepath.Base(name))

	uploader := manager.NewUploader(s.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	if s.publicBaseURL != "" {
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// LocalImageStore writes images under a local directory served at /images.
// Used when S3 is not configured; on ephemeral hosts these files are lost on
// restart.
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir, baseURL string) *LocalImageStore {
	return &LocalImageStore{dir: dir, baseURL: baseURL}
}

func (l *LocalImageStore) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	name = filepath.Base(name)
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	if l.baseURL != "" {
		return strings.TrimRight(l.baseURL, "/") + "/images/" + name, nil
	}
	return "/images/" + name, nil
}
