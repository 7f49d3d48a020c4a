// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SweepFunc processes every pending artifact in the inbox once.
type SweepFunc func(ctx context.Context) error

// Scheduler runs the inbox sweep on a fixed schedule using robfig/cron.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	sweep    SweepFunc
	logger   *slog.Logger
}

// NewScheduler creates a new job scheduler. The schedule is a standard
// 5-field cron expression.
func NewScheduler(schedule string, sweep SweepFunc, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		schedule: schedule,
		sweep:    sweep,
		logger:   logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runSweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("schedule", s.schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers an inbox sweep (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.runSweep()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	started := time.Now()
	s.logger.Info("starting inbox sweep")

	if err := s.sweep(ctx); err != nil {
		s.logger.Error("inbox sweep failed", slog.Any("error", err))
		return
	}

	s.logger.Info("inbox sweep completed",
		slog.Duration("elapsed", time.Since(started)),
	)
}
