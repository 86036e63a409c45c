package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploads in a directory on the local filesystem
type LocalStorage struct {
	uploadsDir string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(uploadsDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{uploadsDir: uploadsDir}, nil
}

func (s *LocalStorage) path(key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.uploadsDir, key), nil
}

// Save writes to a temp file first so readers never see a partial upload.
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.uploadsDir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
