package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	return &CronManager{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
}

func (m *CronManager) registerJobs() error {
	// Daily at 1 AM: snapshot report/rating stats for trend charts
	_, err := m.cron.AddFunc("0 1 * * *", func() {
		if err := m.SnapshotDailyStats(); err != nil {
			log.Println("stats snapshot job failed:", err)
		}
	})
	if err != nil {
		return err
	}

	// Weekly on Sunday at 3 AM: drop snapshots older than the retention window
	_, err = m.cron.AddFunc("0 3 * * 0", func() {
		if err := m.CleanupOldSnapshots(); err != nil {
			log.Println("snapshot cleanup job failed:", err)
		}
	})
	return err
}
