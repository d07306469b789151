package services

import (
	"math"
	"testing"

	"github.com/luct-reporting/api/model"
)

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{"typical class", 28, 50, 56.0},
		{"full attendance", 40, 40, 100.0},
		{"nobody present", 0, 30, 0},
		{"no registered students", 15, 0, 0},
		{"negative total treated as empty", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceRate(tt.present, tt.total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AttendanceRate(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestAverageAttendance(t *testing.T) {
	reports := []model.Report{
		{StudentsPresent: 28, TotalStudents: 50}, // 56%
		{StudentsPresent: 40, TotalStudents: 40}, // 100%
		{StudentsPresent: 10, TotalStudents: 0},  // excluded
	}

	got := AverageAttendance(reports)
	if math.Abs(got-78.0) > 1e-9 {
		t.Errorf("AverageAttendance = %v, want 78.0", got)
	}

	if got := AverageAttendance(nil); got != 0 {
		t.Errorf("AverageAttendance(nil) = %v, want 0", got)
	}

	// Only zero-total reports means nothing to average.
	empty := []model.Report{{StudentsPresent: 10, TotalStudents: 0}}
	if got := AverageAttendance(empty); got != 0 {
		t.Errorf("AverageAttendance with no countable reports = %v, want 0", got)
	}
}

func TestOverall(t *testing.T) {
	stats := []RatingTypeStat{
		{TargetType: "lecturer", TotalRatings: 300, AverageRating: 4.0},
		{TargetType: "course", TotalRatings: 3, AverageRating: 2.0},
	}

	got := Overall(stats)
	if got.TotalRatings != 303 {
		t.Errorf("TotalRatings = %d, want 303", got.TotalRatings)
	}
	// Mean of the per-type averages, not weighted by volume.
	if math.Abs(got.AverageRating-3.0) > 1e-9 {
		t.Errorf("AverageRating = %v, want 3.0", got.AverageRating)
	}

	zero := Overall(nil)
	if zero.TotalRatings != 0 || zero.AverageRating != 0 {
		t.Errorf("Overall(nil) = %+v, want zero value", zero)
	}
}
