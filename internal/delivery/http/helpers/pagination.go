package helpers

import (
	"net/http"
	"strconv"

	"confprogram/internal/domain"
)

// Bounds for the page and page_size query parameters.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func queryInt(r *http.Request, name, fallback string) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		s = fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ParsePagination reads page and page_size from the query string.
// Out-of-range and unparsable values are clamped, never rejected, so
// list endpoints stay usable with sloppy clients.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := queryInt(r, "page", strconv.Itoa(DefaultPage))
	if page < 1 {
		page = DefaultPage
	}
	size := queryInt(r, "page_size", strconv.Itoa(DefaultPageSize))
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return domain.PaginationParams{Page: page, PageSize: size}
}

// PaginationMeta is attached to paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta derives the page count from the total row count.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
