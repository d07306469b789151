package authz

import (
	"github.com/luct-reporting/api/model"
)

// Identity is the authenticated caller as resolved by the auth middleware.
// Name and Faculty come from the user row, never from caller-supplied
// claims, because the report scope rules key off them.
type Identity struct {
	UserID  uint
	Role    string
	Name    string
	Faculty string
}

// Resources and actions known to the policy table.
const (
	ResourceDashboard  = "dashboard"
	ResourceMonitoring = "monitoring"
	ResourceRating     = "rating"
	ResourceClasses    = "classes"
	ResourceReports    = "reports"
	ResourceCourses    = "courses"
	ResourceLecturers  = "lecturers"

	ActionView     = "view"
	ActionSubmit   = "submit"
	ActionManage   = "manage"
	ActionCreate   = "create"
	ActionEditOwn  = "edit_own"
	ActionEditAny  = "edit_any"
	ActionAnalyze  = "analyze"
	ActionReview   = "review"
	ActionAssign   = "assign"
	ActionOversee  = "oversee"
	ActionFeedback = "feedback"
	ActionViewAll  = "view_all"
	ActionMonitor  = "monitor"
	ActionEvaluate = "evaluate"
	ActionApprove  = "approve"
	ActionDelete   = "delete"
)

type permission struct {
	resource string
	action   string
}

// rolePermissions is the fixed permission table, keyed by role. Each role's
// set is built once at package init and never mutated afterwards; Allows is
// a pure lookup.
var rolePermissions map[string]map[permission]struct{}

func init() {
	student := []permission{
		{ResourceDashboard, ActionView},
		{ResourceMonitoring, ActionView},
		{ResourceRating, ActionView},
		{ResourceRating, ActionSubmit},
	}

	lecturer := append([]permission{
		{ResourceClasses, ActionView},
		{ResourceClasses, ActionManage},
		{ResourceClasses, ActionCreate},
		{ResourceReports, ActionView},
		{ResourceReports, ActionCreate},
		{ResourceReports, ActionEditOwn},
	}, student...)

	principal := append([]permission{
		{ResourceMonitoring, ActionAnalyze},
		{ResourceRating, ActionReview},
		{ResourceClasses, ActionAssign},
		{ResourceClasses, ActionOversee},
		{ResourceReports, ActionReview},
		{ResourceReports, ActionFeedback},
		{ResourceCourses, ActionViewAll},
		{ResourceCourses, ActionOversee},
		{ResourceLecturers, ActionView},
		{ResourceLecturers, ActionMonitor},
		{ResourceLecturers, ActionEvaluate},
	}, lecturer...)

	leader := append([]permission{
		{ResourceReports, ActionEditAny},
		{ResourceReports, ActionApprove},
		{ResourceCourses, ActionManage},
		{ResourceCourses, ActionCreate},
		{ResourceCourses, ActionDelete},
		{ResourceCourses, ActionAssign},
		{ResourceLecturers, ActionManage},
		{ResourceLecturers, ActionAssign},
	}, principal...)

	rolePermissions = map[string]map[permission]struct{}{
		model.RoleStudent:           permSet(student),
		model.RoleLecturer:          permSet(lecturer),
		model.RolePrincipalLecturer: permSet(principal),
		model.RoleProgramLeader:     permSet(leader),
	}
}

func permSet(perms []permission) map[permission]struct{} {
	set := make(map[permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Allows reports whether role may perform action on resource. Unknown
// roles, resources and actions are all denied.
func Allows(role, resource, action string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[permission{resource, action}]
	return ok
}
