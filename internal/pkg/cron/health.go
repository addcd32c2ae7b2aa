package cron

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/health"
)

const UpstreamHealthJob = "upstream_health"

// HealthJobs probes the HRMS API so /healthz can answer without a round trip.
type HealthJobs struct {
	healthService health.HealthService
	interval      time.Duration
	timeout       time.Duration
}

func NewHealthJobs(healthService health.HealthService, interval, timeout time.Duration) *HealthJobs {
	return &HealthJobs{
		healthService: healthService,
		interval:      interval,
		timeout:       timeout,
	}
}

func (j *HealthJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(Job{
		Name:     UpstreamHealthJob,
		Interval: j.interval,
		Timeout:  j.timeout,
		Fn:       j.healthService.Probe,
	})
}
