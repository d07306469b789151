package model

import (
	"time"
)

// Feedback is a principal lecturer's review of a submitted report.
type Feedback struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ReportID            uint      `gorm:"not null;index" json:"report_id"`
	PrincipalLecturerID uint      `gorm:"not null" json:"principal_lecturer_id"`
	FeedbackText        string    `gorm:"type:text;not null" json:"feedback_text"`
	Rating              int       `gorm:"not null" json:"rating"`
	CreatedAt           time.Time `json:"created_at"`

	// Populated via join when listing.
	PrincipalLecturerName string `gorm:"->;-:migration" json:"principal_lecturer_name,omitempty"`
}

// TableName keeps the singular table name the schema has always used.
func (Feedback) TableName() string {
	return "feedback"
}
