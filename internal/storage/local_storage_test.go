package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "signature_1700000000000.png", bytes.NewReader([]byte("png-bytes")), 9, "image/png"))

	exists, size, err := s.Exists(ctx, "signature_1700000000000.png")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, int64(9), size)

	rc, err := s.Open(ctx, "signature_1700000000000.png")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "png-bytes", string(data))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Delete(ctx, "signature_1700000000000.png"))
	require.NoError(t, s.Delete(ctx, "signature_1700000000000.png"))

	_, err = s.Open(ctx, "signature_1700000000000.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../secret", "a/b.png", `a\b.png`, "..", ""} {
		_, err := s.Open(ctx, key)
		assert.Error(t, err, key)
		assert.NotErrorIs(t, err, ErrObjectNotFound, key)
		assert.Error(t, s.Save(ctx, key, bytes.NewReader(nil), 0, "image/png"), key)
	}
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("general_1.jpg"))
	assert.False(t, ValidKey("x..png"))
	assert.False(t, ValidKey("dir/x.png"))
}
