package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/contextutil"
	"portfolio/internal/search"
)

// SnapshotReader exposes the state of the served index.
type SnapshotReader interface {
	Snapshot() *search.Snapshot
}

// Pinger checks a database connection. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	index              SnapshotReader
	db                 Pinger
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the
// persistent cache is disabled.
func NewHealthHandler(index SnapshotReader, db Pinger) *HealthHandler {
	return &HealthHandler{
		index:              index,
		db:                 db,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Number of entries in the served index
	IndexEntries int `json:"index_entries"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles GET /api/health. Returns 200 OK if healthy, 503 Service
// Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Create context with timeout for health checks
	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	snap := h.index.Snapshot()
	if h.checkIndex(ctx, snap, logger) {
		checks["index"] = "ok"
	} else {
		checks["index"] = "error"
		issues = append(issues, "search_index_unavailable")
	}

	switch {
	case h.db == nil:
		checks["database"] = "disabled"
	case h.checkDatabase(checkCtx, logger):
		checks["database"] = "ok"
	default:
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
	}

	// Determine overall status
	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Checks:       checks,
		IndexEntries: len(snap.Entries),
		Issues:       issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

// checkIndex reports whether the index has been loaded without error.
func (h *HealthHandler) checkIndex(ctx context.Context, snap *search.Snapshot, logger *slog.Logger) bool {
	if snap == nil || snap.LoadedAt.IsZero() {
		logger.WarnContext(ctx, "search index not loaded yet")
		return false
	}
	if snap.Err != nil {
		logger.WarnContext(ctx, "search index failed to load", "error", snap.Err)
		return false
	}
	return true
}

// checkDatabase checks if the database is reachable.
func (h *HealthHandler) checkDatabase(ctx context.Context, logger *slog.Logger) bool {
	if err := h.db.PingContext(ctx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		return false
	}
	return true
}
