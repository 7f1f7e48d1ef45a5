package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
)

func TestRateLimitMiddleware(t *testing.T) {
	t.Cleanup(clearAll)
	visitors := rl.NewVisitors(0.001, 2)
	r := router.NewRouter(router.Options{Visitors: visitors})

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/collections/equipment", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := range 2 {
		if code := send("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200 OK, got %d", i+1, code)
		}
	}
	if code := send("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
	if code := send("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("expected another client to be served, got %d", code)
	}
	if visitors.Len() != 2 {
		t.Errorf("expected 2 tracked clients, got %d", visitors.Len())
	}

	visitors.CleanupAllVisitors()
	if visitors.Len() != 0 {
		t.Errorf("expected visitors to be cleared, got %d", visitors.Len())
	}
}
