package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP address of r without port. The first
// X-Forwarded-For entry wins, then X-Real-IP, then RemoteAddr.
//
// Forwarding headers are trusted as sent, so the hub must sit behind a proxy
// that overwrites them; otherwise clients can dodge the submission limit.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
