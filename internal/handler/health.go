package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// APIBanner is returned by GET /v1/
const APIBanner = "Sistema Solo Leveling API v2.0"

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and the API banner
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health. It answers 503 when the database does not
// respond to a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "healthy", "database": "ok"}
	if h.db == nil {
		status["database"] = "not configured"
		WriteJSON(w, http.StatusOK, status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("health check failed", slog.String("error", err.Error()))
		status["status"] = "degraded"
		status["database"] = "unreachable"
		WriteJSON(w, http.StatusServiceUnavailable, status)
		return
	}
	WriteJSON(w, http.StatusOK, status)
}

// Root handles GET /v1/
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, map[string]string{"message": APIBanner}, map[string]string{
		"register": "/v1/auth/register",
		"login":    "/v1/auth/login",
		"ranking":  "/v1/ranking",
		"guilds":   "/v1/guilds",
	})
}
