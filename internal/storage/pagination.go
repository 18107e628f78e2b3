package storage

import "gorm.io/gorm"

// Pagination bounds. MaxLimit caps a single page; the API layer rejects
// larger values rather than clamping them silently.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page carries offset/limit pagination parameters for list queries.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the pagination applied when the caller sends none.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// apply adds offset/limit clauses to a query.
func (p Page) apply(q *gorm.DB) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return q.Offset(p.Skip).Limit(limit)
}
