package authz

import (
	"testing"

	"github.com/luct-reporting/api/model"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"student can view dashboard", model.RoleStudent, ResourceDashboard, ActionView, true},
		{"student can submit ratings", model.RoleStudent, ResourceRating, ActionSubmit, true},
		{"student cannot view reports", model.RoleStudent, ResourceReports, ActionView, false},
		{"student cannot view classes", model.RoleStudent, ResourceClasses, ActionView, false},
		{"student cannot view courses", model.RoleStudent, ResourceCourses, ActionViewAll, false},
		{"student cannot view lecturers", model.RoleStudent, ResourceLecturers, ActionView, false},

		{"lecturer can view reports", model.RoleLecturer, ResourceReports, ActionView, true},
		{"lecturer can create reports", model.RoleLecturer, ResourceReports, ActionCreate, true},
		{"lecturer can edit own reports", model.RoleLecturer, ResourceReports, ActionEditOwn, true},
		{"lecturer keeps student permissions", model.RoleLecturer, ResourceRating, ActionSubmit, true},
		{"lecturer cannot give feedback", model.RoleLecturer, ResourceReports, ActionFeedback, false},
		{"lecturer cannot edit any report", model.RoleLecturer, ResourceReports, ActionEditAny, false},

		{"principal can give feedback", model.RolePrincipalLecturer, ResourceReports, ActionFeedback, true},
		{"principal can review ratings", model.RolePrincipalLecturer, ResourceRating, ActionReview, true},
		{"principal can evaluate lecturers", model.RolePrincipalLecturer, ResourceLecturers, ActionEvaluate, true},
		{"principal keeps lecturer permissions", model.RolePrincipalLecturer, ResourceReports, ActionCreate, true},
		{"principal cannot approve reports", model.RolePrincipalLecturer, ResourceReports, ActionApprove, false},
		{"principal cannot delete courses", model.RolePrincipalLecturer, ResourceCourses, ActionDelete, false},

		{"leader can approve reports", model.RoleProgramLeader, ResourceReports, ActionApprove, true},
		{"leader can edit any report", model.RoleProgramLeader, ResourceReports, ActionEditAny, true},
		{"leader can delete courses", model.RoleProgramLeader, ResourceCourses, ActionDelete, true},
		{"leader can manage lecturers", model.RoleProgramLeader, ResourceLecturers, ActionManage, true},
		{"leader keeps principal permissions", model.RoleProgramLeader, ResourceReports, ActionFeedback, true},

		{"unknown role denied", "registrar", ResourceReports, ActionView, false},
		{"unknown resource denied", model.RoleProgramLeader, "grades", ActionView, false},
		{"unknown action denied", model.RoleProgramLeader, ResourceReports, "purge", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allows(tt.role, tt.resource, tt.action); got != tt.want {
				t.Errorf("Allows(%q, %q, %q) = %v, want %v", tt.role, tt.resource, tt.action, got, tt.want)
			}
		})
	}
}
