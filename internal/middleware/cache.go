package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// staticAssets are embedded files that never change between deploys.
var staticAssets = []string{
	"/favicon.svg",
}

// CacheControl sets Cache-Control headers based on request path:
// static assets for a day, swagger docs for an hour, catalog API reads for a
// minute. Pages carry per-visitor dialogs and notices, so they and every
// non-GET request are never stored.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(r *http.Request) string {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return "no-store"
	}

	path := r.URL.Path
	switch {
	case slices.Contains(staticAssets, path):
		return "public, max-age=86400"
	case path == "/robots.txt":
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/swagger/"):
		return "public, max-age=3600"
	case strings.HasPrefix(path, "/api/"):
		return "public, max-age=60, must-revalidate"
	}
	return "private, no-store"
}
