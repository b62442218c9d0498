package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(25, 2, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)

	meta = NewPageMeta(25, 3, 10)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)

	meta = NewPageMeta(0, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)

	// 恰好整除
	meta = NewPageMeta(20, 1, 10)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
}

func TestErrorResponseBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/questions/xyz", nil)

	NotFound(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "Resource not found", body.Message)
	assert.Equal(t, "/api/questions/xyz", body.Path)
	assert.Equal(t, http.MethodDelete, body.Method)
	assert.NotEmpty(t, body.Timestamp)
}
