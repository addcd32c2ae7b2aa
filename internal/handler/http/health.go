package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/health"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

const keepaliveInterval = 30 * time.Second

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	healthService health.HealthService
}

func NewHealthHandler(healthService health.HealthService) HealthHandler {
	return &healthHandlerImpl{
		healthService: healthService,
	}
}

// Healthz implements HealthHandler. It serves the last probe result and
// never calls the API itself.
func (h *healthHandlerImpl) Healthz(w http.ResponseWriter, r *http.Request) {
	snap := h.healthService.Snapshot()
	if snap.Status != health.StatusOK {
		message := snap.Message
		if message == "" {
			message = "Upstream API is " + snap.Status
		}
		response.ServiceUnavailable(w, message, snap)
		return
	}
	response.Success(w, snap)
}

// Stream implements HealthHandler. It sends the current snapshot, then every
// status change, as server-sent events.
func (h *healthHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.healthService.Subscribe(r.Context())
	defer cleanup()

	writeEvent(w, "snapshot", h.healthService.Snapshot())
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		slog.Warn("Failed to encode health event", "event", name, "error", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, b)
}
