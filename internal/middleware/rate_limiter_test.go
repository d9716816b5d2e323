package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Global burst is 10 and per-param burst is 2 (config.yaml); refill is per minute,
// so anything past the burst is rejected within a unit test.

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestRateLimitMiddleware_GlobalBurst(t *testing.T) {
	ResetVisitors()
	SetParamKey("query")
	mw := RateLimitMiddleware(okHandler())
	ip := "1.2.3.4:1234"

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", fmt.Sprintf("/places?query=city%d", i), nil)
		req.RemoteAddr = ip
		mw.ServeHTTP(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d on request %d", w.Result().StatusCode, i+1)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/places?query=city-extra", nil)
	req.RemoteAddr = ip
	mw.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d on 11th request", w.Result().StatusCode)
	}
	var resp map[string]interface{}
	_ = json.NewDecoder(w.Body).Decode(&resp)
	assert.Contains(t, resp["error"], "Rate limit exceeded: max 10 requests per minute per user/IP")
	assert.Equal(t, "Too Many Requests (global limit)", resp["message"])
}

func TestRateLimitMiddleware_PerParamBurst(t *testing.T) {
	ResetVisitors()
	SetParamKey("query")
	mw := RateLimitMiddleware(okHandler())
	ip := "2.3.4.5:2345"

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/places?query=Beijing", nil)
		req.RemoteAddr = ip
		mw.ServeHTTP(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d on request %d", w.Result().StatusCode, i+1)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/places?query=Beijing", nil)
	req.RemoteAddr = ip
	mw.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d on 3rd request", w.Result().StatusCode)
	}
	var resp map[string]interface{}
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if !strings.Contains(resp["error"].(string), "per unique param") {
		t.Errorf("expected per-param limit error, got %v", resp["error"])
	}

	// A different IP has its own buckets.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/places?query=Beijing", nil)
	req.RemoteAddr = "9.9.9.9:1"
	mw.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", getIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", getIP(req))

	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", getIP(req))
}

func TestCleanupVisitors(t *testing.T) {
	ResetVisitors()
	getGlobalLimiter("stale")
	getParamLimiter("stale", "q")
	getGlobalLimiter("fresh")

	muGlobal.Lock()
	globalVisitors["stale"].lastSeen = time.Now().Add(-time.Hour)
	muGlobal.Unlock()
	muParam.Lock()
	paramVisitors["stale"]["q"].lastSeen = time.Now().Add(-time.Hour)
	muParam.Unlock()

	cleanupVisitors(3 * time.Minute)

	muGlobal.Lock()
	_, staleKept := globalVisitors["stale"]
	_, freshKept := globalVisitors["fresh"]
	muGlobal.Unlock()
	muParam.Lock()
	_, staleParamKept := paramVisitors["stale"]
	muParam.Unlock()

	assert.False(t, staleKept)
	assert.True(t, freshKept)
	assert.False(t, staleParamKept)
}

func TestStartRateLimiterCleanup_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	StartRateLimiterCleanup(ctx)
	cancel()
}

func TestGetParam(t *testing.T) {
	SetParamKey("query")
	req := httptest.NewRequest("GET", "/places?query=Beijing&x=1", nil)
	assert.Equal(t, "Beijing", getParam(req))

	req = httptest.NewRequest("GET", "/weather?location_lng=1&location_lat=2", nil)
	assert.Equal(t, "location_lng=1&location_lat=2", getParam(req))

	req = httptest.NewRequest("GET", "/weather", nil)
	assert.Equal(t, "", getParam(req))
}
