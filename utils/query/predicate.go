package query

import (
	"strings"

	"gorm.io/gorm"
)

// Predicate is a boolean condition over a row, lowered to a parameterized
// SQL fragment. Predicates combine with And/Or and are applied to a GORM
// query. Building both the paged fetch and the total count from the same
// Predicate value guarantees the two can never drift apart.
type Predicate struct {
	expr string
	args []interface{}
}

// True returns the always-true predicate. Applying it is a no-op.
func True() Predicate {
	return Predicate{}
}

// Eq matches rows where column equals value exactly.
func Eq(column string, value interface{}) Predicate {
	return Predicate{expr: column + " = ?", args: []interface{}{value}}
}

// Contains matches rows where column contains value, case-insensitively.
func Contains(column string, value string) Predicate {
	return Predicate{expr: column + " ILIKE ?", args: []interface{}{"%" + value + "%"}}
}

// IsTrue reports whether p is the always-true predicate.
func (p Predicate) IsTrue() bool {
	return p.expr == ""
}

// And combines predicates with AND. Always-true operands are dropped.
func And(preds ...Predicate) Predicate {
	return combine(" AND ", preds)
}

// Or combines predicates with OR. Always-true operands are dropped, so
// Or over only-true predicates stays always-true rather than matching all.
func Or(preds ...Predicate) Predicate {
	return combine(" OR ", preds)
}

func combine(op string, preds []Predicate) Predicate {
	exprs := make([]string, 0, len(preds))
	var args []interface{}
	for _, p := range preds {
		if p.IsTrue() {
			continue
		}
		exprs = append(exprs, p.expr)
		args = append(args, p.args...)
	}
	switch len(exprs) {
	case 0:
		return True()
	case 1:
		return Predicate{expr: exprs[0], args: args}
	}
	return Predicate{expr: "(" + strings.Join(exprs, op) + ")", args: args}
}

// SQL returns the fragment and its arguments, mainly for tests.
func (p Predicate) SQL() (string, []interface{}) {
	return p.expr, p.args
}

// Apply narrows db to the rows matching p.
func (p Predicate) Apply(db *gorm.DB) *gorm.DB {
	if p.IsTrue() {
		return db
	}
	return db.Where(p.expr, p.args...)
}

// FindPage executes the paged fetch and the total count against base using
// the same predicate for both. Only ordering, limit and offset differ
// between the two statements. The count and the fetch are separate store
// round-trips; under concurrent writes the total may not exactly match the
// page, which is accepted.
func FindPage(base *gorm.DB, pred Predicate, page Pagination, order string, dest interface{}) (int64, error) {
	scoped := pred.Apply(base)

	var total int64
	if err := scoped.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	err := scoped.Session(&gorm.Session{}).
		Order(order).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(dest).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
