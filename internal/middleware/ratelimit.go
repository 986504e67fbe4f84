package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	windowDuration  = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// SubmissionLimiter caps form submissions per client IP over a sliding window.
// Safe methods (GET, HEAD, OPTIONS) are never limited, so browsing stays free
// while POSTs that open dialogs or reach the gateway are counted.
type SubmissionLimiter struct {
	limit       int
	window      time.Duration
	requests    map[string][]time.Time // IP -> submission timestamps
	mu          sync.Mutex
	cleanupDone chan struct{}
	closeOnce   sync.Once
}

// NewSubmissionLimiter creates a limiter allowing limit submissions per IP
// per minute.
//
// Close must be called when shutting down to stop the background cleanup goroutine.
func NewSubmissionLimiter(limit int) (*SubmissionLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}

	sl := &SubmissionLimiter{
		limit:       limit,
		window:      windowDuration,
		requests:    make(map[string][]time.Time),
		cleanupDone: make(chan struct{}),
	}

	go sl.cleanupLoop()

	slog.Info("submission limiter initialized",
		"limit", limit,
		"window", windowDuration.String(),
	)

	return sl, nil
}

// Middleware returns an http.Handler that rejects submissions over the limit
// with 429 and a Retry-After header.
func (sl *SubmissionLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isSafeMethod(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ip := ExtractIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, oldest := sl.allow(ip)
		if allowed {
			next.ServeHTTP(w, r)
			return
		}

		retryAfter := max(1, int(sl.window.Seconds()-time.Since(oldest).Seconds()))
		slog.Debug("submission limit exceeded", "ip", ip, "path", r.URL.Path, "limit", sl.limit)

		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"too many submissions","code":%d}`+"\n", http.StatusTooManyRequests)
			return
		}
		http.Error(w, "Too many submissions, please wait a moment and try again.", http.StatusTooManyRequests)
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// allow records a submission from ip if it is within the limit. When it is
// not, the oldest timestamp in the window is returned for Retry-After.
func (sl *SubmissionLimiter) allow(ip string) (bool, time.Time) {
	now := time.Now()
	cutoff := now.Add(-sl.window)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	recent := filterValidTimestamps(sl.requests[ip], cutoff)
	if len(recent) >= sl.limit {
		sl.requests[ip] = recent
		return false, recent[0]
	}

	sl.requests[ip] = append(recent, now)
	return true, time.Time{}
}

func (sl *SubmissionLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sl.cleanup()
		case <-sl.cleanupDone:
			return
		}
	}
}

// cleanup drops IPs with no submissions inside the window.
func (sl *SubmissionLimiter) cleanup() {
	cutoff := time.Now().Add(-sl.window)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	for ip, timestamps := range sl.requests {
		recent := filterValidTimestamps(timestamps, cutoff)
		if len(recent) == 0 {
			delete(sl.requests, ip)
		} else {
			sl.requests[ip] = recent
		}
	}
}

func filterValidTimestamps(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the background cleanup goroutine. Safe to call multiple times.
func (sl *SubmissionLimiter) Close() {
	sl.closeOnce.Do(func() {
		close(sl.cleanupDone)
	})
}
