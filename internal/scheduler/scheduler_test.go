package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateSchedule(t *testing.T) {
	for _, schedule := range []string{"@every 10m", "@hourly", "*/5 * * * *"} {
		assert.NoError(t, ValidateSchedule(schedule), schedule)
	}
	for _, schedule := range []string{"", "every ten minutes", "* * *"} {
		assert.Error(t, ValidateSchedule(schedule), schedule)
	}
}

func TestAddRejectsDuplicateAndInvalidJobs(t *testing.T) {
	s := New(nil)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Add("job", "@every 1m", noop))
	assert.Error(t, s.Add("job", "@every 1m", noop))
	assert.Error(t, s.Add("other", "bogus", noop))
	assert.Error(t, s.Add("empty", "@every 1m", nil))
}

func TestRunNowLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(core))
	require.NoError(t, s.Add("failing", "@every 1h", func(context.Context) error { return errors.New("disk full") }))

	err := s.RunNow("failing")
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, logs.FilterMessage("scheduled job failed").Len())
	assert.Error(t, s.RunNow("missing"))
}

func TestStartStopsWhenContextIsCancelled(t *testing.T) {
	s := New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	assert.True(t, s.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestMaintenancePrunesRateLimiter(t *testing.T) {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	limiter := uploads.NewRateLimiter(5, time.Hour, func() time.Time { return now })
	limiter.Allow("203.0.113.7")
	now = now.Add(2 * time.Hour)

	s := New(nil)
	require.NoError(t, RegisterMaintenance(s, MaintenanceConfig{
		Limiter:       limiter,
		PruneSchedule: "@every 10m",
		SweepSchedule: "@every 1h",
	}))

	require.NoError(t, s.RunNow(JobPruneRateLimits))
	assert.Equal(t, 0, limiter.Len())
	assert.Error(t, s.RunNow(JobSweepOrphans))
}
