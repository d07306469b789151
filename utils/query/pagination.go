package query

// Pagination parameters are 1-indexed. DefaultLimit applies when the
// caller supplies no usable limit; MaxLimit caps what a caller may ask for.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is a normalized page/limit pair.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination coerces raw page/limit values into a valid Pagination.
// Pages below 1 become 1; limits below 1 become DefaultLimit; limits above
// MaxLimit are capped.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit). An empty result set has zero pages.
func (p Pagination) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := int(total) / p.Limit
	if int(total)%p.Limit > 0 {
		pages++
	}
	return pages
}
