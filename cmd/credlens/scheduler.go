// cmd/credlens/scheduler.go
package main

import (
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic maintenance jobs: history pruning and
// rotated-log cleanup.
type Scheduler struct {
	cron    *cron.Cron
	cfg     *Config
	history *HistoryStore
}

// NewScheduler creates the maintenance scheduler
func NewScheduler(cfg *Config, history *HistoryStore) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		cfg:     cfg,
		history: history,
	}
}

// Start registers and launches the cron jobs.
func (s *Scheduler) Start() error {
	retention := time.Duration(s.cfg.HistoryRetentionDays) * 24 * time.Hour

	_, err := s.cron.AddFunc(s.cfg.PruneCronSchedule, func() {
		removed, err := s.history.Prune(retention)
		if err != nil {
			Logger().Error("History prune failed: %v", err)
			return
		}
		if removed > 0 {
			Logger().Info("Pruned %d history records older than %d days", removed, s.cfg.HistoryRetentionDays)
		}

		if err := Logger().CleanOldLogs(7 * 24 * time.Hour); err != nil {
			Logger().Warning("Log cleanup failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	Logger().Info("Maintenance scheduler started (%s)", s.cfg.PruneCronSchedule)
	return nil
}

// Stop halts the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
