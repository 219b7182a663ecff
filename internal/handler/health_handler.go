package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health pings every registered dependency. Any failure turns the answer
// into 503.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.HealthChecks))
	for name := range h.HealthChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK
	for _, name := range names {
		if err := h.HealthChecks[name](ctx); err != nil {
			h.Logger.Warn("health check failed", slog.String("check", name), slog.Any("err", err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	writeSuccess(w, resp, status)
}
