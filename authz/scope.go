package authz

import (
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/query"
)

// Row-scope rules. These narrow which rows a permitted caller sees and are
// applied in addition to the Allows check, never instead of it.

// ScopeReports returns the predicate narrowing the reports visible to the
// caller. ok is false when the role may not view reports at all, which is
// a policy denial rather than an empty scope.
//
// Lecturers are matched by display name against the report's lecturer_name
// column. That is a compatibility shim carried over from the existing data:
// reports store the lecturer as free text, not as a user id, so a stable
// foreign-key join is not available. The name is always resolved from the
// authenticated user row, never taken from the request.
func ScopeReports(caller Identity) (query.Predicate, bool) {
	if !Allows(caller.Role, ResourceReports, ActionView) {
		return query.True(), false
	}

	switch caller.Role {
	case model.RoleLecturer:
		return query.Eq("reports.lecturer_name", caller.Name), true
	case model.RolePrincipalLecturer:
		return query.Eq("reports.faculty_name", caller.Faculty), true
	default:
		// program_leader sees everything
		return query.True(), true
	}
}

// ScopeRatings returns the predicate narrowing the ratings visible to the
// caller. Students see only their own submissions; every other role is
// unrestricted.
func ScopeRatings(caller Identity) query.Predicate {
	if caller.Role == model.RoleStudent {
		return query.Eq("ratings.rated_by", caller.UserID)
	}
	return query.True()
}
