package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"olms-backend/internal/logger"
	"olms-backend/internal/service"
)

// multipartOverhead is allowed on top of the file size limit for form
// boundaries and the other fields.
const multipartOverhead = 64 << 10

type UploadHandler struct {
	uploads  service.UploadService
	maxBytes int64
}

func NewUploadHandler(uploads service.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploads: uploads, maxBytes: maxBytes}
}

// Upload handles multipart POST /api/upload with a "file" part and an
// optional "type" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, r, service.ErrFileTooLarge, "Failed to upload file")
			return
		}
		writeServiceError(w, r, service.ErrFileRequired, "Failed to upload file")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeServiceError(w, r, service.ErrFileRequired, "Failed to upload file")
		return
	}
	defer file.Close()

	res, err := h.uploads.Upload(r.Context(), UserFromContext(r.Context()), service.UploadRequest{
		Kind:        r.FormValue("type"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload file")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Download handles GET /api/upload?filename=.
func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	f, err := h.uploads.Open(r.Context(), r.URL.Query().Get("filename"))
	if err != nil {
		writeServiceError(w, r, err, "File not found")
		return
	}
	defer f.Body.Close()

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f.Body); err != nil {
		logger.WarnContext(r.Context(), "Failed to stream upload", "error", err)
	}
}
