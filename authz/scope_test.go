package authz

import (
	"testing"

	"github.com/luct-reporting/api/model"
)

func TestScopeReports(t *testing.T) {
	tests := []struct {
		name     string
		caller   Identity
		wantOK   bool
		wantExpr string
		wantArg  interface{}
	}{
		{
			name:   "student is denied outright",
			caller: Identity{UserID: 1, Role: model.RoleStudent, Name: "Alice Uwase"},
			wantOK: false,
		},
		{
			name:     "lecturer scoped to own name",
			caller:   Identity{UserID: 2, Role: model.RoleLecturer, Name: "Dr. John Smith"},
			wantOK:   true,
			wantExpr: "reports.lecturer_name = ?",
			wantArg:  "Dr. John Smith",
		},
		{
			name:     "principal scoped to own faculty",
			caller:   Identity{UserID: 3, Role: model.RolePrincipalLecturer, Faculty: "Faculty of ICT"},
			wantOK:   true,
			wantExpr: "reports.faculty_name = ?",
			wantArg:  "Faculty of ICT",
		},
		{
			name:     "program leader unrestricted",
			caller:   Identity{UserID: 4, Role: model.RoleProgramLeader},
			wantOK:   true,
			wantExpr: "",
		},
		{
			name:   "unknown role is denied",
			caller: Identity{UserID: 5, Role: "registrar"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, ok := ScopeReports(tt.caller)
			if ok != tt.wantOK {
				t.Fatalf("ScopeReports ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			expr, args := pred.SQL()
			if expr != tt.wantExpr {
				t.Errorf("expr = %q, want %q", expr, tt.wantExpr)
			}
			if tt.wantArg != nil {
				if len(args) != 1 || args[0] != tt.wantArg {
					t.Errorf("args = %v, want [%v]", args, tt.wantArg)
				}
			}
		})
	}
}

func TestScopeRatings(t *testing.T) {
	student := Identity{UserID: 7, Role: model.RoleStudent}
	pred := ScopeRatings(student)
	expr, args := pred.SQL()
	if expr != "ratings.rated_by = ?" {
		t.Errorf("student expr = %q, want rated_by filter", expr)
	}
	if len(args) != 1 || args[0] != uint(7) {
		t.Errorf("student args = %v, want [7]", args)
	}

	for _, role := range []string{model.RoleLecturer, model.RolePrincipalLecturer, model.RoleProgramLeader} {
		if !ScopeRatings(Identity{UserID: 8, Role: role}).IsTrue() {
			t.Errorf("role %q should be unrestricted", role)
		}
	}
}
