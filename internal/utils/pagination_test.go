package utils

import (
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string) *PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFor(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsClampsValues(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		order    string
	}{
		{"negative page", "page=-3", 1, DefaultPageSize, "desc"},
		{"oversized page_size", "page_size=5000", 1, MaxPageSize, "desc"},
		{"zero page_size", "page_size=0", 1, MinPageSize, "desc"},
		{"bad order falls back", "order=sideways", 1, DefaultPageSize, "desc"},
		{"asc order kept", "order=asc", 1, DefaultPageSize, "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsFor(t, tt.query)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.pageSize, params.PageSize)
			assert.Equal(t, tt.order, params.Order)
		})
	}
}

func TestGetSkipAndDirection(t *testing.T) {
	params := &PaginationParams{Page: 3, PageSize: 20, Order: "asc"}

	assert.Equal(t, 40, params.GetSkip())
	assert.Equal(t, 20, params.GetLimit())
	assert.Equal(t, firestore.Asc, params.GetDirection())

	params.Order = "desc"
	assert.Equal(t, firestore.Desc, params.GetDirection())
}

func TestCreatePaginationMeta(t *testing.T) {
	params := &PaginationParams{Page: 2, PageSize: 10}

	meta := CreatePaginationMeta(params, 35)

	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PreviousPage)
}

func TestCreatePaginationMetaLastPage(t *testing.T) {
	params := &PaginationParams{Page: 4, PageSize: 10}

	meta := CreatePaginationMeta(params, 35)

	assert.False(t, meta.HasNext)
	assert.Nil(t, meta.NextPage)
	assert.True(t, meta.HasPrevious)
}
