// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	l := newRateLimiter(1, 2)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":4242"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2"), "buckets are per address")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))

	now = now.Add(limiterTTL + time.Second)
	do("10.0.0.3")
	assert.Len(t, l.visitors, 1, "idle buckets are evicted")

	now = now.Add(limiterTTL + time.Second)
	l.lastSweep = now
	do("10.0.0.4")
	assert.Len(t, l.visitors, 2, "no sweep before the interval elapses")

	now = now.Add(sweepInterval)
	do("10.0.0.4")
	assert.Len(t, l.visitors, 1)
}

func TestRateLimiterProxyHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		trusted  bool
		expected []int
	}{
		{
			name:     "forwarded header ignored by default",
			expected: []int{http.StatusNoContent, http.StatusTooManyRequests, http.StatusTooManyRequests},
		},
		{
			name:     "forwarded header honoured behind a trusted proxy",
			trusted:  true,
			expected: []int{http.StatusNoContent, http.StatusNoContent, http.StatusNoContent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handler http.Handler = newRateLimiter(1, 1).Middleware(ok)
			if tt.trusted {
				handler = middleware.RealIP(handler)
			}

			for i, forwarded := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.RemoteAddr = "10.0.0.1:4242"
				req.Header.Set("X-Forwarded-For", forwarded)
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				assert.Equal(t, tt.expected[i], w.Code, "request %d", i)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		xff      string
		expected string
	}{
		{name: "remote address", remote: "192.0.2.1:1234", expected: "192.0.2.1"},
		{name: "forwarded header is not trusted", remote: "10.0.0.1:1234", xff: "203.0.113.7, 10.0.0.1", expected: "10.0.0.1"},
		{name: "no port", remote: "192.0.2.9", expected: "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
