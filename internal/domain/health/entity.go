package health

import (
	"context"
	"time"
)

const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnreachable = "unreachable"
	StatusUnknown     = "unknown"
)

// Report is the body of the API's GET /health.
type Report struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	Timestamp string  `json:"timestamp"`
	Error     *string `json:"error"`
}

// Snapshot is the last probe result as served by /healthz.
type Snapshot struct {
	Status    string    `json:"status"`
	Upstream  *Report   `json:"upstream,omitempty"`
	Message   string    `json:"message,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// EventStatusChanged is sent whenever the probed status differs from the last one.
const EventStatusChanged = "status_changed"

// Event is a snapshot pushed to /healthz/stream subscribers.
type Event struct {
	Event string   `json:"event"`
	Data  Snapshot `json:"data"`
}

type HealthRepository interface {
	// Check probes the API. A degraded API is a valid report, not an error.
	Check(ctx context.Context) (Report, error)
}

type HealthService interface {
	// Probe checks the API once and records the result
	Probe(ctx context.Context) error

	// Snapshot returns the last recorded result
	Snapshot() Snapshot

	// Subscribe streams status changes until ctx is done or cleanup is called
	Subscribe(ctx context.Context) (<-chan Event, func())
}
