package query

import (
	"reflect"
	"testing"
)

func TestEq(t *testing.T) {
	expr, args := Eq("reports.faculty_name", "Faculty of ICT").SQL()
	if expr != "reports.faculty_name = ?" {
		t.Errorf("expr = %q", expr)
	}
	if !reflect.DeepEqual(args, []interface{}{"Faculty of ICT"}) {
		t.Errorf("args = %v", args)
	}
}

func TestContains(t *testing.T) {
	expr, args := Contains("reports.course_name", "web").SQL()
	if expr != "reports.course_name ILIKE ?" {
		t.Errorf("expr = %q", expr)
	}
	if !reflect.DeepEqual(args, []interface{}{"%web%"}) {
		t.Errorf("args = %v", args)
	}
}

func TestTrueIsNoOp(t *testing.T) {
	if !True().IsTrue() {
		t.Fatal("True() should report IsTrue")
	}
	if expr, _ := True().SQL(); expr != "" {
		t.Errorf("True() expr = %q, want empty", expr)
	}
}

func TestAnd(t *testing.T) {
	tests := []struct {
		name     string
		pred     Predicate
		wantExpr string
		wantArgs []interface{}
	}{
		{
			name:     "two conditions",
			pred:     And(Eq("a", 1), Eq("b", 2)),
			wantExpr: "(a = ? AND b = ?)",
			wantArgs: []interface{}{1, 2},
		},
		{
			name:     "true operands dropped",
			pred:     And(True(), Eq("a", 1), True()),
			wantExpr: "a = ?",
			wantArgs: []interface{}{1},
		},
		{
			name:     "all true stays true",
			pred:     And(True(), True()),
			wantExpr: "",
		},
		{
			name:     "no operands stays true",
			pred:     And(),
			wantExpr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, args := tt.pred.SQL()
			if expr != tt.wantExpr {
				t.Errorf("expr = %q, want %q", expr, tt.wantExpr)
			}
			if tt.wantArgs != nil && !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestOr(t *testing.T) {
	search := Or(
		Contains("reports.class_name", "BSc"),
		Contains("reports.course_name", "BSc"),
		Contains("reports.lecturer_name", "BSc"),
	)
	expr, args := search.SQL()
	want := "(reports.class_name ILIKE ? OR reports.course_name ILIKE ? OR reports.lecturer_name ILIKE ?)"
	if expr != want {
		t.Errorf("expr = %q, want %q", expr, want)
	}
	if len(args) != 3 {
		t.Errorf("args = %v, want 3 values", args)
	}

	// Or over only-true operands must stay always-true, not match-all
	// through an empty disjunction.
	if !Or(True(), True()).IsTrue() {
		t.Error("Or of true predicates should stay true")
	}
}

func TestNestedComposition(t *testing.T) {
	scope := Eq("reports.faculty_name", "Faculty of ICT")
	search := Or(Contains("reports.class_name", "web"), Contains("reports.course_name", "web"))
	combined := And(scope, search, True())

	expr, args := combined.SQL()
	want := "(reports.faculty_name = ? AND (reports.class_name ILIKE ? OR reports.course_name ILIKE ?))"
	if expr != want {
		t.Errorf("expr = %q, want %q", expr, want)
	}
	wantArgs := []interface{}{"Faculty of ICT", "%web%", "%web%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}
