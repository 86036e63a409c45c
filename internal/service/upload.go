package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/storage"
)

const (
	defaultUploadKind = "general"
	signatureKind     = "signature"
)

var uploadValidate = validator.New()

// UploadPolicy limits what may be uploaded.
type UploadPolicy struct {
	MaxBytes     int64
	AllowedTypes []string
}

type uploadService struct {
	store       storage.StorageInterface
	settingRepo repository.SettingRepository
	policy      UploadPolicy
	now         func() time.Time
}

func NewUploadService(store storage.StorageInterface, settingRepo repository.SettingRepository, policy UploadPolicy) UploadService {
	if policy.MaxBytes <= 0 {
		policy.MaxBytes = 2 * 1024 * 1024
	}
	if len(policy.AllowedTypes) == 0 {
		policy.AllowedTypes = []string{"image/png", "image/jpeg", "image/jpg"}
	}
	return &uploadService{
		store:       store,
		settingRepo: settingRepo,
		policy:      policy,
		now:         time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, user *domain.User, req UploadRequest) (*UploadResult, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if !user.IsAdmin() {
		return nil, ErrForbidden
	}
	if req.Body == nil {
		return nil, ErrFileRequired
	}
	if err := uploadValidate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Kind" {
			return nil, ErrInvalidKind
		}
		return nil, ErrInvalidFileType
	}
	if !s.allowed(req.ContentType) {
		return nil, ErrInvalidFileType
	}
	if req.Size > s.policy.MaxBytes {
		return nil, ErrFileTooLarge
	}

	kind := req.Kind
	if kind == "" {
		kind = defaultUploadKind
	}
	key := fmt.Sprintf("%s_%d.%s", kind, s.now().UnixMilli(), extensionFor(req.Filename, req.ContentType))

	if err := s.store.Save(ctx, key, req.Body, req.Size, req.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	uploadsStored.WithLabelValues(kind).Inc()

	if kind == signatureKind {
		if err := s.settingRepo.Upsert(ctx, domain.SettingSignaturePath, key); err != nil {
			return nil, fmt.Errorf("failed to record signature path: %w", err)
		}
		logger.InfoContext(ctx, "Signature image updated", "key", key, "user_id", user.ID)
	}

	return &UploadResult{
		Success:  true,
		Filename: key,
		Path:     "/api/upload?filename=" + url.QueryEscape(key),
	}, nil
}

func (s *uploadService) Open(ctx context.Context, filename string) (*StoredFile, error) {
	if filename == "" {
		return nil, ErrFilenameRequired
	}
	if !storage.ValidKey(filename) {
		return nil, ErrInvalidFilename
	}

	exists, size, err := s.store.Exists(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat upload: %w", err)
	}
	if !exists {
		return nil, ErrFileNotFound
	}

	rc, err := s.store.Open(ctx, filename)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}

	return &StoredFile{Body: rc, ContentType: contentTypeFor(filename), Size: size}, nil
}

func (s *uploadService) allowed(contentType string) bool {
	for _, t := range s.policy.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// extensionFor keeps the client's extension, falling back to one derived
// from the content type.
func extensionFor(filename, contentType string) string {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" && storage.ValidKey(ext) {
		return strings.ToLower(ext)
	}
	if contentType == "image/png" {
		return "png"
	}
	return "jpg"
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
