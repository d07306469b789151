package model

import (
	"time"
)

// Role values accepted for a user account.
const (
	RoleStudent           = "student"
	RoleLecturer          = "lecturer"
	RolePrincipalLecturer = "principal_lecturer"
	RoleProgramLeader     = "program_leader"
)

// User represents a registered user in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"type:varchar(50);not null" json:"role"`
	Faculty      string    `gorm:"type:varchar(255)" json:"faculty,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Reports  []Report   `gorm:"foreignKey:CreatedBy" json:"-"`
	Ratings  []Rating   `gorm:"foreignKey:RatedBy" json:"-"`
	Feedback []Feedback `gorm:"foreignKey:PrincipalLecturerID" json:"-"`
}

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader:
		return true
	}
	return false
}
