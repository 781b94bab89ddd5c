// internal/common/utils/pagination.go
// Offset/limit pagination shared by all list endpoints

package utils

import (
	"net/http"
	"strconv"
)

const maxLimit = 100

// PaginationMeta describes the page a list response covers
type PaginationMeta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
}

// NewPaginationMeta builds metadata for a page of a list with total items
func NewPaginationMeta(page, limit, total int) PaginationMeta {
	offset := (page - 1) * limit
	return PaginationMeta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasNext: offset+limit < total,
	}
}

// GetPagination extracts page and limit query parameters, falling back to
// page 1 and the endpoint's default limit. Values outside [1, maxLimit]
// are ignored rather than rejected.
func GetPagination(r *http.Request, defaultLimit int) (int, int) {
	page := 1
	limit := defaultLimit

	if p := r.URL.Query().Get("page"); p != "" {
		if val, err := strconv.Atoi(p); err == nil && val > 0 {
			page = val
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 && val <= maxLimit {
			limit = val
		}
	}

	return page, limit
}
