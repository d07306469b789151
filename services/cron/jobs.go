package cron

import (
	"context"
	"log"
	"time"

	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/services"
	"github.com/luct-reporting/api/utils/query"
	"gorm.io/gorm/clause"
)

// snapshotRetention is how long daily stat snapshots are kept.
const snapshotRetention = 90 * 24 * time.Hour

// SnapshotDailyStats computes the unscoped report and rating aggregates and
// stores them under today's date. Re-running on the same day overwrites the
// existing row.
func (m *CronManager) SnapshotDailyStats() error {
	ctx := context.Background()
	stats := services.NewStatsService(m.db)

	reportStats, err := stats.ReportStats(ctx, query.True())
	if err != nil {
		return err
	}

	var totalRatings int64
	if err := m.db.Model(&model.Rating{}).Count(&totalRatings).Error; err != nil {
		return err
	}

	snapshot := model.StatSnapshot{
		SnapshotDate:      time.Now().UTC().Format("2006-01-02"),
		TotalReports:      reportStats.TotalReports,
		TotalRatings:      totalRatings,
		AverageAttendance: reportStats.AverageAttendance,
	}

	err = m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_reports", "total_ratings", "average_attendance"}),
	}).Create(&snapshot).Error
	if err != nil {
		return err
	}

	log.Printf("stats snapshot stored for %s: %d reports, %d ratings",
		snapshot.SnapshotDate, snapshot.TotalReports, snapshot.TotalRatings)
	return nil
}

// CleanupOldSnapshots removes snapshots past the retention window.
func (m *CronManager) CleanupOldSnapshots() error {
	cutoff := time.Now().UTC().Add(-snapshotRetention).Format("2006-01-02")
	result := m.db.Where("snapshot_date < ?", cutoff).Delete(&model.StatSnapshot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("removed %d stat snapshots older than %s", result.RowsAffected, cutoff)
	}
	return nil
}
