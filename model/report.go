package model

import (
	"time"
)

// Report is a lecturer's weekly lecture report. Reports are write-once:
// nothing in the API updates or deletes a report after submission.
type Report struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FacultyName      string    `gorm:"not null;index" json:"faculty_name"`
	ClassName        string    `gorm:"not null" json:"class_name"`
	WeekReporting    string    `gorm:"type:varchar(50);not null" json:"week_reporting"`
	DateLecture      string    `gorm:"type:date;not null" json:"date_lecture"`
	CourseName       string    `gorm:"not null" json:"course_name"`
	CourseCode       string    `gorm:"not null;index" json:"course_code"`
	LecturerName     string    `gorm:"not null;index" json:"lecturer_name"`
	StudentsPresent  int       `gorm:"not null" json:"students_present"`
	TotalStudents    int       `gorm:"not null" json:"total_students"`
	Venue            string    `gorm:"not null" json:"venue"`
	LectureTime      string    `gorm:"type:varchar(100);not null" json:"lecture_time"`
	TopicTaught      string    `gorm:"type:text;not null" json:"topic_taught"`
	LearningOutcomes string    `gorm:"type:text;not null" json:"learning_outcomes"`
	Recommendations  string    `gorm:"type:text" json:"recommendations,omitempty"`
	CreatedBy        uint      `gorm:"index" json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`

	// Populated via join when listing; not a persisted column set.
	SenderName  string `gorm:"->;-:migration" json:"sender_name,omitempty"`
	SenderRole  string `gorm:"->;-:migration" json:"sender_role,omitempty"`
	SenderEmail string `gorm:"->;-:migration" json:"sender_email,omitempty"`
}

// AttendanceRate returns the report's attendance as a percentage.
// A report with no registered students has a rate of 0, not NaN.
func (r *Report) AttendanceRate() float64 {
	if r.TotalStudents <= 0 {
		return 0
	}
	return float64(r.StudentsPresent) / float64(r.TotalStudents) * 100
}
