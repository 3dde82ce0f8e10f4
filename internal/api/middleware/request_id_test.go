package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var got string
	router.GET("/x", func(c *gin.Context) {
		got = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	if got == "" {
		t.Fatal("request id missing from context")
	}
	if header := w.Header().Get(RequestIDHeader); header != got {
		t.Errorf("header = %q, want %q", header, got)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var got string
	router.GET("/x", func(c *gin.Context) {
		got = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "rid-from-client")
	router.ServeHTTP(w, req)

	if got != "rid-from-client" {
		t.Errorf("request id = %q, want rid-from-client", got)
	}
}
