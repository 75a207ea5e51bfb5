package scheduler

import (
	"context"

	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"go.uber.org/zap"
)

const (
	JobPruneRateLimits = "prune_rate_limits"
	JobSweepOrphans    = "sweep_orphaned_uploads"
)

// MaintenanceConfig names the upload housekeeping jobs and their schedules.
type MaintenanceConfig struct {
	Limiter       *uploads.RateLimiter
	Sweeper       *uploads.OrphanSweeper
	PruneSchedule string
	SweepSchedule string
	Logger        *zap.Logger
}

// RegisterMaintenance adds limiter pruning and the orphan sweep to the scheduler.
// Jobs without a collaborator are skipped.
func RegisterMaintenance(s *Scheduler, cfg MaintenanceConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Limiter != nil {
		limiter := cfg.Limiter
		if err := s.Add(JobPruneRateLimits, cfg.PruneSchedule, func(context.Context) error {
			if removed := limiter.Prune(); removed > 0 {
				logger.Debug("rate limit windows pruned", zap.Int("removed", removed), zap.Int("tracked", limiter.Len()))
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if cfg.Sweeper != nil {
		sweeper := cfg.Sweeper
		if err := s.Add(JobSweepOrphans, cfg.SweepSchedule, func(ctx context.Context) error {
			removed, err := sweeper.Sweep(ctx)
			if removed > 0 {
				logger.Info("orphaned uploads swept", zap.Int("removed", removed))
			}
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}
