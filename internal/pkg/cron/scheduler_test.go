package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobValidation(t *testing.T) {
	s := NewScheduler()

	assert.Error(t, s.AddJob(Job{Name: "no-interval", Fn: func(context.Context) error { return nil }}))
	assert.Error(t, s.AddJob(Job{Name: "no-fn", Interval: time.Second}))
	require.NoError(t, s.AddJob(Job{Name: "ok", Interval: time.Second, Fn: func(context.Context) error { return nil }}))

	assert.Equal(t, []string{"ok"}, s.Jobs())
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	var runs int32
	s := NewScheduler()
	require.NoError(t, s.AddJob(Job{
		Name:     "count",
		Interval: 10 * time.Millisecond,
		Fn: func(context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	}))

	s.Start(context.Background())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs))
}

func TestScheduler_RunOnce(t *testing.T) {
	boom := errors.New("boom")
	var order []string
	s := NewScheduler()
	require.NoError(t, s.AddJob(Job{Name: "first", Interval: time.Hour, Fn: func(context.Context) error {
		order = append(order, "first")
		return boom
	}}))
	require.NoError(t, s.AddJob(Job{Name: "panics", Interval: time.Hour, Fn: func(context.Context) error {
		order = append(order, "panics")
		panic("unexpected")
	}}))
	require.NoError(t, s.AddJob(Job{Name: "last", Interval: time.Hour, Fn: func(context.Context) error {
		order = append(order, "last")
		return nil
	}}))

	err := s.RunOnce(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "panics", "last"}, order)
}

func TestScheduler_JobTimeout(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.AddJob(Job{
		Name:     "slow",
		Interval: time.Hour,
		Timeout:  10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}))

	assert.ErrorIs(t, s.RunOnce(context.Background()), context.DeadlineExceeded)
}

type stubHealthService struct {
	probes int32
}

func (s *stubHealthService) Probe(context.Context) error {
	atomic.AddInt32(&s.probes, 1)
	return nil
}

func (s *stubHealthService) Snapshot() health.Snapshot {
	return health.Snapshot{}
}

func (s *stubHealthService) Subscribe(context.Context) (<-chan health.Event, func()) {
	ch := make(chan health.Event)
	close(ch)
	return ch, func() {}
}

func TestHealthJobs_RegisterJobs(t *testing.T) {
	svc := &stubHealthService{}
	s := NewScheduler()

	require.NoError(t, NewHealthJobs(svc, time.Minute, time.Second).RegisterJobs(s))
	require.NoError(t, s.RunOnce(context.Background()))

	assert.Equal(t, []string{UpstreamHealthJob}, s.Jobs())
	assert.Equal(t, int32(1), atomic.LoadInt32(&svc.probes))
}
