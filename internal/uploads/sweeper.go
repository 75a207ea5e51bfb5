package uploads

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ReferenceChecker reports whether a committed row owns a public audio URL.
type ReferenceChecker interface {
	ReferencesAudio(ctx context.Context, audioURL string) (bool, error)
}

// OrphanSweeper removes stored files that no row references once they are older than the grace period.
// Such files are left behind when the process stops between persisting and committing.
type OrphanSweeper struct {
	store      *DiskStore
	references ReferenceChecker
	grace      time.Duration
	clock      func() time.Time
	logger     *zap.Logger
}

// NewOrphanSweeper constructs a sweeper. A nil clock uses time.Now.
func NewOrphanSweeper(store *DiskStore, references ReferenceChecker, grace time.Duration, clock func() time.Time, logger *zap.Logger) (*OrphanSweeper, error) {
	if store == nil {
		return nil, fmt.Errorf("orphan sweeper: disk store required")
	}
	if references == nil {
		return nil, fmt.Errorf("orphan sweeper: reference checker required")
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrphanSweeper{store: store, references: references, grace: grace, clock: clock, logger: logger}, nil
}

// Sweep removes unreferenced files past the grace period and reports how many were removed.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	files, err := s.store.List()
	if err != nil {
		return 0, err
	}

	cutoff := s.clock().Add(-s.grace)
	removed := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if file.ModTime.After(cutoff) {
			continue
		}
		referenced, err := s.references.ReferencesAudio(ctx, file.URL)
		if err != nil {
			return removed, err
		}
		if referenced {
			continue
		}
		if err := s.store.Remove(file); err != nil {
			s.logger.Error("orphan sweep failed", zap.String("stored_path", file.Path), zap.Error(err))
			continue
		}
		s.logger.Info("orphaned upload removed", zap.String("stored_path", file.Path))
		removed++
	}
	return removed, nil
}
