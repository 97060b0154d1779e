package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg *config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	router.GET("/api/v1/bills/x/print", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCORSMiddleware_ExposesDownloadAndPreviewHeaders(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bills/x/print", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	exposed := w.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "Content-Disposition")
	assert.Contains(t, exposed, "X-Preview-Pending")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_ConfiguredOriginOnly(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{AllowedOrigins: []string{"https://counter.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bills/x/print", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, []string{"a"}, orDefault(nil, []string{"a"}))
	assert.Equal(t, []string{"b"}, orDefault([]string{"b"}, []string{"a"}))
}
