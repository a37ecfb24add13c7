package http

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	Message       string `json:"message,omitempty"`
	DurationMs    int64  `json:"duration_ms"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// HealthHandler reports whether the database answers a ping.
type HealthHandler struct {
	db        Pinger
	timeout   time.Duration
	startTime time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		timeout:   2 * time.Second,
		startTime: time.Now(),
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	resp := healthResponse{
		Status:        "healthy",
		Database:      "healthy",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	code := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "unhealthy"
		resp.Message = err.Error()
		code = http.StatusServiceUnavailable
	}
	resp.DurationMs = time.Since(start).Milliseconds()

	respondWithJSON(w, code, resp)
}
