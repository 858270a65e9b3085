package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubPinger returns err from every ping.
type stubPinger struct {
	err   error
	calls int
}

func (p *stubPinger) PingContext(ctx context.Context) error {
	p.calls++
	return p.err
}

func setupHealthRouter(p Pinger) *gin.Engine {
	h := NewHealthHandler(p)
	r := gin.New()
	r.GET("/healthz", h.Check)
	r.HEAD("/healthz", h.Check)
	r.OPTIONS("/healthz", h.Check)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupHealthRouter(&stubPinger{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", response["status"])
	}
	if response["database"] != "up" {
		t.Errorf("expected database 'up', got %q", response["database"])
	}

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_GET_DatabaseDown(t *testing.T) {
	t.Parallel()

	router := setupHealthRouter(&stubPinger{err: errors.New("connection refused")})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "degraded" || response["database"] != "down" {
		t.Errorf("unexpected body %v", response)
	}
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	router := setupHealthRouter(&stubPinger{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	// HEAD should have no body
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body for HEAD request, got %d bytes", w.Body.Len())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_OPTIONS(t *testing.T) {
	t.Parallel()

	p := &stubPinger{}
	router := setupHealthRouter(p)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if p.calls != 0 {
		t.Errorf("OPTIONS must not ping the database, got %d pings", p.calls)
	}
}
