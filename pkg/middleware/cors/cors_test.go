package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/pkg/config"
)

func newRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAllowedOriginEchoed(t *testing.T) {
	r := newRouter(config.CORSConfig{AllowedOrigins: []string{"https://dept.college.edu"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://dept.college.edu")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://dept.college.edu", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownOriginNotEchoed(t *testing.T) {
	r := newRouter(config.CORSConfig{AllowedOrigins: []string{"https://dept.college.edu"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWildcardEntryAllowsAnyOrigin(t *testing.T) {
	r := newRouter(config.CORSConfig{AllowedOrigins: []string{"*"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://anywhere.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightShortCircuits(t *testing.T) {
	r := newRouter(config.CORSConfig{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://dept.college.edu")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
