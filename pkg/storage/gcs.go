package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GCSStore writes blobs to a Google Cloud Storage bucket. Objects are expected
// to be publicly readable through the bucket's IAM policy.
type GCSStore struct {
	client     *storage.Client
	bucket     string
	publicHost string
	maxBytes   int64
	logger     *zap.Logger
}

// NewGCSStore prefers application default credentials; credJSON overrides them.
func NewGCSStore(ctx context.Context, bucket, credJSON, publicHost string, maxBytes int64, logger *zap.Logger) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(credJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	if publicHost == "" {
		publicHost = "storage.googleapis.com"
	}

	return &GCSStore{
		client:     client,
		bucket:     bucket,
		publicHost: publicHost,
		maxBytes:   maxBytes,
		logger:     logger,
	}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := Validate(key, data, contentType, s.maxBytes); err != nil {
		return "", err
	}

	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to upload to Google Cloud Storage: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	s.logger.Debug("Blob stored in GCS",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("size", len(data)),
	)
	return s.ObjectURL(key), nil
}

func (s *GCSStore) ObjectURL(key string) string {
	return "https://" + s.publicHost + "/" + s.bucket + "/" + key
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
