package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"olms-backend/internal/logger"
)

// MinioOptions configures the MinIO backend.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStorage stores uploads as objects in a single bucket
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects and creates the bucket when missing.
func NewMinioStorage(ctx context.Context, opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
		logger.Info("Created MinIO bucket", "bucket", opts.Bucket)
	}

	return &MinioStorage{client: client, bucket: opts.Bucket}, nil
}

func (s *MinioStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if !ValidKey(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	logger.ExternalServiceCall("minio", "PutObject", "key", key, "size", size)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	logger.ExternalServiceResult("minio", "PutObject", err, "key", key)
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Open stats first so a missing key surfaces as ErrObjectNotFound
// instead of failing on the first Read.
func (s *MinioStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	exists, _, err := s.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrObjectNotFound
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return obj, nil
}

func (s *MinioStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	if !ValidKey(key) {
		return false, 0, fmt.Errorf("invalid storage key %q", key)
	}
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).StatusCode == http.StatusNotFound {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, info.Size, nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if !ValidKey(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
