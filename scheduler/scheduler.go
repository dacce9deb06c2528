package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper promotes due scheduled publications. Implemented by
// services.ScheduleService.
type Sweeper interface {
	RunSweep(now time.Time) (int, error)
}

// Scheduler drives the publication sweep on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *slog.Logger
}

func New(sweeper Sweeper, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		logger:  logger,
	}
}

// Start registers the sweep to run every minute and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		count, err := s.sweeper.RunSweep(time.Now())
		if err != nil {
			s.logger.Error("publication sweep failed", "error", err)
			return
		}
		if count > 0 {
			s.logger.Info("publication sweep finished", "promoted", count)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Entries exposes the registered cron entries, used in tests.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}
