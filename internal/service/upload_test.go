package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olms-backend/internal/domain"
	"olms-backend/internal/service"
)

var (
	adminUser = &domain.User{ID: "u1", Username: "admin", Role: domain.UserRoleAdmin, Status: domain.UserStatusActive}
	staffUser = &domain.User{ID: "u2", Username: "staff", Role: domain.UserRoleStaff, Status: domain.UserStatusActive}
)

func pngUpload(kind string, size int64) service.UploadRequest {
	return service.UploadRequest{
		Kind:        kind,
		Filename:    "sig.PNG",
		ContentType: "image/png",
		Size:        size,
		Body:        strings.NewReader("png-bytes"),
	}
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("signature updates setting", func(t *testing.T) {
		store, settings := newMemStore(), newFakeSettings()
		svc := service.NewUploadService(store, settings, service.UploadPolicy{})

		res, err := svc.Upload(ctx, adminUser, pngUpload("signature", 9))
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, strings.HasPrefix(res.Filename, "signature_"))
		assert.True(t, strings.HasSuffix(res.Filename, ".png"))
		assert.Equal(t, res.Filename, settings.values["signature_path"])
		assert.Contains(t, store.objects, res.Filename)
	})

	t.Run("kind defaults to general", func(t *testing.T) {
		settings := newFakeSettings()
		svc := service.NewUploadService(newMemStore(), settings, service.UploadPolicy{})

		res, err := svc.Upload(ctx, adminUser, pngUpload("", 9))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Filename, "general_"))
		assert.NotContains(t, settings.values, "signature_path")
	})

	t.Run("rejections", func(t *testing.T) {
		svc := service.NewUploadService(newMemStore(), newFakeSettings(), service.UploadPolicy{MaxBytes: 100})

		_, err := svc.Upload(ctx, nil, pngUpload("", 9))
		assert.ErrorIs(t, err, service.ErrUnauthenticated)

		_, err = svc.Upload(ctx, staffUser, pngUpload("", 9))
		assert.ErrorIs(t, err, service.ErrForbidden)

		_, err = svc.Upload(ctx, adminUser, pngUpload("", 101))
		assert.ErrorIs(t, err, service.ErrFileTooLarge)

		gif := pngUpload("", 9)
		gif.ContentType = "image/gif"
		_, err = svc.Upload(ctx, adminUser, gif)
		assert.ErrorIs(t, err, service.ErrInvalidFileType)

		_, err = svc.Upload(ctx, adminUser, pngUpload("../etc", 9))
		assert.ErrorIs(t, err, service.ErrInvalidKind)

		empty := pngUpload("", 0)
		empty.Body = nil
		_, err = svc.Upload(ctx, adminUser, empty)
		assert.ErrorIs(t, err, service.ErrFileRequired)
	})
}

func TestUploadService_Open(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.objects["signature_1.png"] = []byte("png-bytes")
	store.objects["notes_1.txt"] = []byte("x")
	svc := service.NewUploadService(store, newFakeSettings(), service.UploadPolicy{})

	f, err := svc.Open(ctx, "signature_1.png")
	require.NoError(t, err)
	data, _ := io.ReadAll(f.Body)
	f.Body.Close()
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, int64(9), f.Size)

	f, err = svc.Open(ctx, "notes_1.txt")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", f.ContentType)

	_, err = svc.Open(ctx, "")
	assert.ErrorIs(t, err, service.ErrFilenameRequired)

	_, err = svc.Open(ctx, "../config.yaml")
	assert.ErrorIs(t, err, service.ErrInvalidFilename)

	_, err = svc.Open(ctx, "missing.png")
	assert.ErrorIs(t, err, service.ErrFileNotFound)
}
