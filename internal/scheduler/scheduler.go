package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// JobFunc is a unit of periodic maintenance work.
type JobFunc func(ctx context.Context) error

// Scheduler runs named maintenance jobs on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger

	mu         sync.Mutex
	jobs       map[string]JobFunc
	isRunning  bool
	runContext context.Context
	cancelFunc context.CancelFunc
}

// New creates a stopped scheduler.
func New(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:       cron.New(cron.WithParser(scheduleParser)),
		logger:     logger,
		jobs:       make(map[string]JobFunc),
		runContext: context.Background(),
	}
}

// ValidateSchedule reports whether a cron expression or descriptor can be parsed.
func ValidateSchedule(schedule string) error {
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return nil
}

// Add registers a job under a unique name.
func (s *Scheduler) Add(name, schedule string, job JobFunc) error {
	if job == nil {
		return fmt.Errorf("scheduler: job %s has no function", name)
	}
	if err := ValidateSchedule(schedule); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("scheduler: job %s already registered", name)
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.run(name) }); err != nil {
		return fmt.Errorf("scheduler: schedule job %s: %w", name, err)
	}
	s.jobs[name] = job
	s.logger.Info("scheduled job registered", zap.String("job", name), zap.String("schedule", schedule))
	return nil
}

// Start begins firing jobs until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.runContext, s.cancelFunc = context.WithCancel(ctx)
	s.cron.Start()
	s.isRunning = true

	go func(done <-chan struct{}) {
		<-done
		s.Stop()
	}(s.runContext.Done())
}

// Stop halts the scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// RunNow executes a registered job synchronously.
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	_, exists := s.jobs[name]
	s.mu.Unlock()
	if !exists {
		return fmt.Errorf("scheduler: unknown job %s", name)
	}
	return s.run(name)
}

func (s *Scheduler) run(name string) error {
	s.mu.Lock()
	job := s.jobs[name]
	ctx := s.runContext
	s.mu.Unlock()

	started := time.Now()
	if err := job(ctx); err != nil {
		s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		return err
	}
	s.logger.Debug("scheduled job completed", zap.String("job", name), zap.Duration("elapsed", time.Since(started)))
	return nil
}
