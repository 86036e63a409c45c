package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"olms-backend/internal/logger"
)

// Config holds storage backend selection
type Config struct {
	Type      string // "local" or "minio"
	UploadDir string // directory for local storage
	Minio     MinioOptions
}

// New builds the configured backend.
func New(ctx context.Context, cfg Config) (StorageInterface, error) {
	switch cfg.Type {
	case "", "local":
		logger.Info("Using local file storage", "dir", cfg.UploadDir)
		return NewLocalStorage(cfg.UploadDir)
	case "minio":
		logger.Info("Using MinIO storage", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
		return NewMinioStorage(ctx, cfg.Minio)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ValidKey reports whether key is a plain file name.
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return false
	}
	return filepath.Base(key) == key
}
