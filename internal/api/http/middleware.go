package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/config"
	"olms-backend/internal/logger"
	"olms-backend/internal/service"
)

const requestIDHeader = "X-Request-ID"

// requestLogger attaches a request scoped logger to the context and logs
// each completed request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		l := logger.Get().With("request_id", requestID, "route", routeName(r))
		ctx := logger.NewContext(r.Context(), l)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		l.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

type authMiddleware struct {
	auth service.AuthService
}

// Handler enforces the route's security level and stores the resolved user
// in the request context.
func (m *authMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.GetSecurityLevel(routeName(r))
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}

		user, err := m.auth.Authenticate(r.Context(), token)
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}
		if err != nil {
			logger.ErrorContext(r.Context(), "Failed to authenticate request", "error", err)
			writeError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		if level == config.SecurityAdmin && !user.IsAdmin() {
			logger.WarnContext(r.Context(), "Admin route denied", "user_id", user.ID)
			writeError(w, http.StatusForbidden, msgUnauthorized)
			return
		}

		ctx := logger.NewContext(withUser(r.Context(), user), logger.FromContext(r.Context()).With("user_id", user.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
