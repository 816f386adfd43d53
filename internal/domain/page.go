package domain

// List endpoints page through contacts and reminders with these bounds.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams is a 1-indexed page of a list ordered by the repo.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds PaginationParams from the optional ?page and
// ?limit query values. Missing or non-positive values fall back to page 1 and
// DefaultPageLimit; larger limits are clamped to MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is the number of pages needed to list total rows. An empty list
// still has one (empty) page.
func (p PaginationParams) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 1
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
