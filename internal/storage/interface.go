package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a key has no stored object.
var ErrObjectNotFound = errors.New("object not found")

// StorageInterface defines the backend for uploaded images. Keys are flat
// file names; backends reject anything that could escape their root.
type StorageInterface interface {
	// Save stores the reader's content under key. size may be -1 when unknown.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Open returns the object's content. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if an object exists and returns its size
	Exists(ctx context.Context, key string) (exists bool, size int64, err error)

	Delete(ctx context.Context, key string) error
}
