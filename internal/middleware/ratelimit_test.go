package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	rl := newIPRateLimiter(0.001, 2)
	h := rl.middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first requests within burst should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %d", codes[2])
	}
}

func TestRateLimit_SeparateBucketsPerIP(t *testing.T) {
	rl := newIPRateLimiter(0.001, 1)
	h := rl.middleware(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("request from %s got %d, want 200", addr, rec.Code)
		}
	}
}

func TestRateLimit_RetryAfterHeader(t *testing.T) {
	rl := newIPRateLimiter(0.5, 1)
	h := rl.middleware(okHandler())

	var rec *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.3:1"
		h.ServeHTTP(rec, req)
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "2" {
		t.Errorf("Retry-After = %q, want %q", got, "2")
	}
}

func TestSweep_RemovesIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newIPRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("idle")
	now = now.Add(visitorTTL + time.Second)
	rl.getLimiter("active")

	rl.sweep(visitorTTL)

	if _, ok := rl.visitors["idle"]; ok {
		t.Error("idle visitor should have been removed")
	}
	if _, ok := rl.visitors["active"]; !ok {
		t.Error("active visitor should be kept")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4000"
	if got := clientIP(req); got != "192.168.1.5" {
		t.Errorf("clientIP() = %q, want %q", got, "192.168.1.5")
	}

	req.RemoteAddr = "no-port"
	if got := clientIP(req); got != "no-port" {
		t.Errorf("clientIP() = %q, want %q", got, "no-port")
	}
}

func TestCleanup_StopsWhenContextDone(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.cleanup(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not return after context cancellation")
	}
}

func TestRateLimit_WithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := RateLimit(ctx, 0.001, 1)(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("first request got %d, want 200", rec.Code)
	}
}
