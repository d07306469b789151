package model

import (
	"time"
)

// StatSnapshot is written by the nightly digest job so the dashboard can
// show attendance trends without recomputing them over the full table.
type StatSnapshot struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	SnapshotDate      string    `gorm:"type:date;not null;uniqueIndex" json:"snapshot_date"`
	TotalReports      int64     `json:"total_reports"`
	TotalRatings      int64     `json:"total_ratings"`
	AverageAttendance float64   `json:"average_attendance"`
	CreatedAt         time.Time `json:"created_at"`
}
