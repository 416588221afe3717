// README: Tests for router wiring and request ID propagation.
package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	httpserver "tripsmith/internal/http"
	"tripsmith/internal/service"
)

type noopPlanner struct{}

func (noopPlanner) GenerateTrip(_ context.Context, _ string) (*service.TripPlan, error) {
	return &service.TripPlan{}, nil
}

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := httpserver.NewServer(httpserver.ServerDeps{
		Planner: noopPlanner{},
		Log:     zerolog.Nop(),
	})
	return srv.Routes()
}

// TestHealth verifies the liveness endpoint.
func TestHealth(t *testing.T) {
	r := newTestServer()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// TestRequestID_Generated verifies every response carries a request ID.
func TestRequestID_Generated(t *testing.T) {
	r := newTestServer()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

// TestRequestID_Echoed verifies a caller-supplied request ID is kept.
func TestRequestID_Echoed(t *testing.T) {
	r := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "trace-me-123" {
		t.Errorf("expected echoed request ID, got %q", got)
	}
}
