package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestRateLimit(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	h := RateLimit(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 60, Now: c.now})(okHandler())

	call := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/entries", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := call("10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := call("10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want %q", got, "1")
	}

	// other clients have their own bucket
	if rec := call("10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}

	c.t = c.t.Add(time.Second)
	if rec := call("10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Errorf("after refill status = %d, want 200", rec.Code)
	}
}

func TestRateLimitSweepsIdleBuckets(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	l := newLimiter(RateLimitConfig{Burst: 1, IdleTTL: time.Minute, SweepInterval: time.Minute, Now: c.now})

	l.take("a")
	l.take("b")
	c.t = c.t.Add(2 * time.Minute)
	l.take("c")

	if len(l.buckets) != 1 {
		t.Errorf("buckets = %d, want only the fresh one", len(l.buckets))
	}
}
