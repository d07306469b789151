package services

import (
	"context"

	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/query"
	"gorm.io/gorm"
)

// StatsService computes aggregate statistics over reports and ratings.
// Every method takes the caller's scope predicate so aggregates never see
// rows the caller could not list.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// AttendanceRate returns present/total as a percentage. Defined as 0 when
// total is zero so a report with no registered students never divides by
// zero.
func AttendanceRate(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// AverageAttendance returns the mean of per-report attendance rates,
// restricted to reports that have registered students.
func AverageAttendance(reports []model.Report) float64 {
	var sum float64
	var n int
	for _, r := range reports {
		if r.TotalStudents > 0 {
			sum += r.AttendanceRate()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// GroupCount is one group in a group-by aggregate.
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// ReportStats holds the aggregate view of a scoped set of reports.
type ReportStats struct {
	TotalReports      int64
	TotalPresent      int64
	TotalRegistered   int64
	AverageAttendance float64
	ByFaculty         []GroupCount
	ByLecturer        []GroupCount
}

type reportTotalsRow struct {
	TotalReports    int64
	TotalPresent    int64
	TotalRegistered int64
}

// ReportStats computes totals, average attendance and group-by counts over
// the reports matching pred.
func (s *StatsService) ReportStats(ctx context.Context, pred query.Predicate) (*ReportStats, error) {
	base := func() *gorm.DB {
		return pred.Apply(s.db.WithContext(ctx).Model(&model.Report{}))
	}

	var totals reportTotalsRow
	err := base().
		Select("COUNT(*) AS total_reports, COALESCE(SUM(students_present), 0) AS total_present, COALESCE(SUM(total_students), 0) AS total_registered").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var avg struct{ AvgAttendance float64 }
	err = base().
		Select("COALESCE(AVG(students_present::float / total_students * 100), 0) AS avg_attendance").
		Where("total_students > 0").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}

	byFaculty, err := s.CountReportsBy(ctx, "faculty_name", pred, 0)
	if err != nil {
		return nil, err
	}

	// Lecturer breakdown is capped: large faculties have hundreds of
	// lecturers and the dashboard only charts the top ten.
	byLecturer, err := s.CountReportsBy(ctx, "lecturer_name", pred, 10)
	if err != nil {
		return nil, err
	}

	return &ReportStats{
		TotalReports:      totals.TotalReports,
		TotalPresent:      totals.TotalPresent,
		TotalRegistered:   totals.TotalRegistered,
		AverageAttendance: avg.AvgAttendance,
		ByFaculty:         byFaculty,
		ByLecturer:        byLecturer,
	}, nil
}

// groupableReportColumns is the fixed set of columns CountReportsBy will
// group on. Anything else is rejected before it reaches the store.
var groupableReportColumns = map[string]struct{}{
	"faculty_name":  {},
	"lecturer_name": {},
	"course_code":   {},
}

// CountReportsBy groups the scoped reports by a single column and returns
// the groups ordered by count, descending. A limit of 0 means no limit.
func (s *StatsService) CountReportsBy(ctx context.Context, column string, pred query.Predicate, limit int) ([]GroupCount, error) {
	if _, ok := groupableReportColumns[column]; !ok {
		return nil, gorm.ErrInvalidField
	}

	q := pred.Apply(s.db.WithContext(ctx).Model(&model.Report{})).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order("count DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var groups []GroupCount
	if err := q.Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// RatingTypeStat is the aggregate for one rating target type.
type RatingTypeStat struct {
	TargetType      string  `json:"target_type"`
	TotalRatings    int64   `json:"total_ratings"`
	AverageRating   float64 `json:"average_rating"`
	MinRating       int     `json:"min_rating"`
	MaxRating       int     `json:"max_rating"`
	FiveStars       int64   `json:"five_stars"`
	PositiveRatings int64   `json:"positive_ratings"`
}

// OverallRatingStats is the roll-up across target types.
type OverallRatingStats struct {
	TotalRatings  int64   `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

// RatingStats computes per-target-type aggregates over the ratings
// matching pred, ordered by rating volume.
func (s *StatsService) RatingStats(ctx context.Context, pred query.Predicate) ([]RatingTypeStat, error) {
	var stats []RatingTypeStat
	err := pred.Apply(s.db.WithContext(ctx).Model(&model.Rating{})).
		Select(`target_type,
			COUNT(*) AS total_ratings,
			AVG(rating_score) AS average_rating,
			MIN(rating_score) AS min_rating,
			MAX(rating_score) AS max_rating,
			COUNT(CASE WHEN rating_score = 5 THEN 1 END) AS five_stars,
			COUNT(CASE WHEN rating_score >= 4 THEN 1 END) AS positive_ratings`).
		Group("target_type").
		Order("total_ratings DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Overall rolls per-type stats into one figure. The average is the mean of
// the per-type averages, not a weighted mean over individual ratings. That
// matches what the dashboard has always shown; a type with three ratings
// weighs as much as one with three hundred. Kept deliberately.
func Overall(stats []RatingTypeStat) OverallRatingStats {
	var overall OverallRatingStats
	if len(stats) == 0 {
		return overall
	}
	var sum float64
	for _, st := range stats {
		overall.TotalRatings += st.TotalRatings
		sum += st.AverageRating
	}
	overall.AverageRating = sum / float64(len(stats))
	return overall
}
