package http

import (
	"context"
	"net/http"
	"time"

	"olms-backend/internal/logger"
	"olms-backend/internal/service"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	bootstrap service.BootstrapService
	seed      service.SeedService
	db        Pinger
}

func NewSystemHandler(bootstrap service.BootstrapService, seed service.SeedService, db Pinger) *SystemHandler {
	return &SystemHandler{bootstrap: bootstrap, seed: seed, db: db}
}

type systemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *SystemHandler) Init(w http.ResponseWriter, r *http.Request) {
	if err := h.bootstrap.Initialize(r.Context()); err != nil {
		writeServiceError(w, r, err, "Initialization failed")
		return
	}
	writeJSON(w, http.StatusOK, systemResponse{Success: true, Message: "System initialized successfully"})
}

func (h *SystemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	report, err := h.seed.Seed(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load sample data")
		return
	}
	writeJSON(w, http.StatusOK, systemResponse{Success: true, Message: "Sample data loaded successfully", Data: report})
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			logger.WarnContext(r.Context(), "Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
