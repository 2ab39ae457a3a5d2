package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service and database status
type HealthHandler struct {
	DB Pinger
}

// Health answers 200 unless a configured database is unreachable
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "disabled"}
	if h.DB == nil {
		writeJSON(w, http.StatusOK, status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	status["database"] = "ok"
	writeJSON(w, http.StatusOK, status)
}
