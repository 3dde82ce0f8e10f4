package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/internal/api/handlers"
	"github.com/Kurty-byte/plant-sampling/internal/config"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newRouter(testConfig(), handlers.NewServer(handlers.ServerDeps{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newRouter(testConfig(), handlers.NewServer(handlers.ServerDeps{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_LivenessWithoutDatabase(t *testing.T) {
	router := newRouter(testConfig(), handlers.NewServer(handlers.ServerDeps{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health/live status = %d, want %d", w.Code, http.StatusOK)
	}
}
