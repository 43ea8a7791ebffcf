package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"valo-platform-backend/internal/config"
	apperrors "valo-platform-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const presignExpiry = 24 * time.Hour

// StorageService stores match screenshots in an S3 compatible bucket and
// hands out short lived download links. Implements ScreenshotStore.
type StorageService struct {
	client *minio.Client
	bucket string
}

// NewStorageService creates a new storage service from the configuration
func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if !cfg.StorageEnabled() {
		return nil, apperrors.ErrStorageConfigMissing
	}

	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &StorageService{
		client: client,
		bucket: cfg.StorageBucket,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *StorageService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// UploadScreenshot stores a screenshot under the team's prefix and returns the
// object key
func (s *StorageService) UploadScreenshot(ctx context.Context, teamID uuid.UUID, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("matches/%s/%s%s", teamID, uuid.NewString(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	return key, nil
}

// PresignScreenshot returns a presigned download URL for a stored object key
func (s *StorageService) PresignScreenshot(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return u.String(), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
