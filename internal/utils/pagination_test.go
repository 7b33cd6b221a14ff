package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) *PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsClamping(t *testing.T) {
	params := paramsForQuery(t, "page=0&limit=0")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MinPageSize, params.Limit)

	params = paramsForQuery(t, "page=-3&limit=10000&order=sideways")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxPageSize, params.Limit)
	assert.Equal(t, "desc", params.Order)

	params = paramsForQuery(t, "page=abc&limit=xyz")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MinPageSize, params.Limit)
}

func TestGetSkip(t *testing.T) {
	params := &PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, 20, params.GetSkip())

	params = &PaginationParams{Page: 1, Limit: 10}
	assert.Equal(t, 0, params.GetSkip())
}

func TestCreatePaginationMeta(t *testing.T) {
	params := &PaginationParams{Page: 2, Limit: 10}

	meta := CreatePaginationMeta(params, 25)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)

	meta = CreatePaginationMeta(params, 0)
	assert.Equal(t, 0, meta.TotalPages)

	meta = CreatePaginationMeta(params, 10)
	assert.Equal(t, 1, meta.TotalPages)
}
