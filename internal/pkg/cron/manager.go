package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/job"
)

type Manager struct {
	engine         *cron.Cron
	orphanSweepJob *job.OrphanSweepJob
}

func NewCronManager(orphanSweepJob *job.OrphanSweepJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		orphanSweepJob: orphanSweepJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.orphanSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
