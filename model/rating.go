package model

import (
	"time"
)

// Target types a rating may be submitted against.
const (
	TargetLecturer = "lecturer"
	TargetCourse   = "course"
	TargetClass    = "class"
	TargetStudent  = "student"
	TargetFacility = "facility"
)

// Rating is a 1-5 score submitted against a lecturer, course, class,
// student or facility. Immutable after creation. RaterRole is a
// denormalized copy of the submitter's role at submission time.
type Rating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TargetType  string    `gorm:"type:varchar(50);not null;index" json:"target_type"`
	TargetID    string    `gorm:"type:varchar(255)" json:"target_id"`
	TargetName  string    `gorm:"not null" json:"target_name"`
	RatingScore int       `gorm:"not null" json:"rating_score"`
	Comments    string    `gorm:"type:text" json:"comments,omitempty"`
	RatedBy     uint      `gorm:"index" json:"rated_by"`
	RaterRole   string    `gorm:"type:varchar(50);not null" json:"rater_role"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated via join when listing.
	RaterName string `gorm:"->;-:migration" json:"rater_name,omitempty"`
}

// ValidTargetType reports whether t is a known rating target type.
func ValidTargetType(t string) bool {
	switch t {
	case TargetLecturer, TargetCourse, TargetClass, TargetStudent, TargetFacility:
		return true
	}
	return false
}
