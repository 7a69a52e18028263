// Package scheduler runs the background price refresh outside the request
// path.
package scheduler

import (
	"context"
	"log/slog"

	"hiko_buyforme/internal/infrastructure/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron     *cron.Cron
	jobs     *Jobs
	schedule string
	log      *logger.Logger
}

func NewScheduler(jobs *Jobs, schedule string, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	return &Scheduler{
		cron:     c,
		jobs:     jobs,
		schedule: schedule,
		log:      log,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.jobs.runRefresh); err != nil {
		s.log.Error("failed to schedule price refresh job", "error", err)
		return err
	}
	s.log.Info("scheduled price refresh job", "schedule", s.schedule)

	s.cron.Start()
	return nil
}

// Stop stops the scheduler; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
