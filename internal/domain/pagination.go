package domain

// PaginationParams selects one page of a list query. Both fields are
// expected to be sanitized by the transport layer before they reach a
// repository.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the requested page.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the row cap for one page. A non-positive page size
// falls back to a single row rather than an unbounded query.
func (p PaginationParams) Limit() int {
	if p.PageSize < 1 {
		return 1
	}
	return p.PageSize
}
