package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(captured *string) *gin.Engine {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			*captured = c.GetString(RequestIDKey)
			c.Status(http.StatusNoContent)
		})
		return router
	}

	t.Run("generates an id when none supplied", func(t *testing.T) {
		var captured string
		w := httptest.NewRecorder()
		newRouter(&captured).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, w.Header().Get(RequestIDHeader))
	})

	t.Run("honors the caller's id", func(t *testing.T) {
		var captured string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		newRouter(&captured).ServeHTTP(w, req)

		assert.Equal(t, "abc-123", captured)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}
