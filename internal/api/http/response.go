package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"olms-backend/internal/logger"
	"olms-backend/internal/service"
)

const (
	msgNotAuthenticated = "Not authenticated"
	msgUnauthorized     = "Unauthorized"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// clientErrors maps service sentinels to the status and message sent to
// the client. Anything not listed is a 500.
var clientErrors = []struct {
	err    error
	status int
	msg    string
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized, msgNotAuthenticated},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{service.ErrForbidden, http.StatusForbidden, msgUnauthorized},
	{service.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{service.ErrLoanNotFound, http.StatusNotFound, "Loan not found"},
	{service.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{service.ErrFileNotFound, http.StatusNotFound, "File not found"},
	{service.ErrReceiptTargetRequired, http.StatusBadRequest, "Payment ID or Loan ID is required"},
	{service.ErrInvalidCopy, http.StatusBadRequest, "Invalid receipt type"},
	{service.ErrFileRequired, http.StatusBadRequest, "No file provided"},
	{service.ErrInvalidFileType, http.StatusBadRequest, "Invalid file type. Only PNG and JPG are allowed"},
	{service.ErrFileTooLarge, http.StatusBadRequest, "File size too large. Maximum 2MB allowed"},
	{service.ErrInvalidKind, http.StatusBadRequest, "Invalid upload type"},
	{service.ErrFilenameRequired, http.StatusBadRequest, "Filename is required"},
	{service.ErrInvalidFilename, http.StatusBadRequest, "Invalid filename"},
}

// writeServiceError answers with the mapped client error, or logs err and
// answers 500 with fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			writeError(w, ce.status, ce.msg)
			return
		}
	}
	logger.ErrorContext(r.Context(), fallback, "error", err)
	writeError(w, http.StatusInternalServerError, fallback)
}
