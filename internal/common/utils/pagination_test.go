package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/posts/feed", nil)

	page, limit := GetPagination(r, 5)

	assert.Equal(t, 1, page)
	assert.Equal(t, 5, limit)
}

func TestGetPagination_FromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/posts/feed?page=3&limit=20", nil)

	page, limit := GetPagination(r, 5)

	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
}

func TestGetPagination_IgnoresInvalidValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/posts/feed?page=-1&limit=0", nil)

	page, limit := GetPagination(r, 5)

	assert.Equal(t, 1, page)
	assert.Equal(t, 5, limit)
}

func TestGetPagination_IgnoresOversizedLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/posts/feed?limit=5000", nil)

	_, limit := GetPagination(r, 10)

	assert.Equal(t, 10, limit)
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(1, 5, 12)
	assert.True(t, meta.HasNext)
	assert.Equal(t, 12, meta.Total)

	meta = NewPaginationMeta(3, 5, 12)
	assert.False(t, meta.HasNext)

	meta = NewPaginationMeta(1, 5, 5)
	assert.False(t, meta.HasNext)
}
