// internal/services/storage_service.go
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/javajoker/storefront-backend/internal/config"
)

// StorageService signs download links for product resources kept in S3.
// Without credentials it is disabled and resource URLs are served as stored.
type StorageService struct {
	s3Client *s3.S3
	config   config.StorageConfig
}

func NewStorageService(cfg config.StorageConfig) (*StorageService, error) {
	if cfg.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

func (s *StorageService) Enabled() bool {
	return s != nil && s.s3Client != nil
}

// SignedURL returns a time-limited GET URL for an s3://bucket/key reference.
// Any other URL is returned unchanged.
func (s *StorageService) SignedURL(ctx context.Context, rawURL string) (string, error) {
	bucket, key, ok := ParseObjectURL(rawURL)
	if !ok || !s.Enabled() {
		return rawURL, nil
	}
	if bucket == "" {
		bucket = s.config.S3Bucket
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	req.SetContext(ctx)

	signed, err := req.Presign(s.config.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return signed, nil
}

// ParseObjectURL splits "s3://bucket/key". An empty bucket ("s3:///key")
// means the configured default bucket.
func ParseObjectURL(rawURL string) (bucket, key string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "s3" {
		return "", "", false
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", false
	}
	return u.Host, key, true
}
