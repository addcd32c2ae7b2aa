package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/health"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/sse"
)

const topic = "upstream_health"

type HealthServiceImpl struct {
	healthRepo health.HealthRepository
	hub        *sse.Hub
	now        func() time.Time

	mu   sync.RWMutex
	last health.Snapshot
}

func NewHealthService(healthRepo health.HealthRepository, hub *sse.Hub) health.HealthService {
	return &HealthServiceImpl{
		healthRepo: healthRepo,
		hub:        hub,
		now:        time.Now,
		last:       health.Snapshot{Status: health.StatusUnknown},
	}
}

// Probe implements health.HealthService. The snapshot is updated on every
// call, including failed ones.
func (s *HealthServiceImpl) Probe(ctx context.Context) error {
	report, err := s.healthRepo.Check(ctx)

	snap := health.Snapshot{CheckedAt: s.now().UTC()}
	switch {
	case err != nil:
		snap.Status = health.StatusUnreachable
		snap.Message = apiclient.Message(err)
	case report.Status == health.StatusOK:
		snap.Status = health.StatusOK
		snap.Upstream = &report
	default:
		snap.Status = health.StatusDegraded
		snap.Upstream = &report
		if report.Error != nil {
			snap.Message = *report.Error
		}
	}

	s.mu.Lock()
	previous := s.last.Status
	s.last = snap
	s.mu.Unlock()

	if previous != snap.Status {
		slog.Info("Upstream health changed", "from", previous, "to", snap.Status, "message", snap.Message)
		if s.hub != nil {
			s.hub.Publish(topic, sse.Event{Event: health.EventStatusChanged, Data: snap})
		}
	}

	return err
}

// Snapshot implements health.HealthService.
func (s *HealthServiceImpl) Snapshot() health.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Subscribe implements health.HealthService.
func (s *HealthServiceImpl) Subscribe(ctx context.Context) (<-chan health.Event, func()) {
	out := make(chan health.Event, 1)
	if s.hub == nil {
		close(out)
		return out, func() {}
	}

	ch, cleanup := s.hub.Subscribe(topic)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				snap, ok := event.Data.(health.Snapshot)
				if !ok {
					continue
				}
				select {
				case out <- health.Event{Event: event.Event, Data: snap}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
