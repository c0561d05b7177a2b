package v1

import (
	"net/http"
	"strings"
)

// clientIP resolves the caller's address: first entry of X-Forwarded-For,
// then X-Real-IP, else "unknown". The per-IP quota keys on this value.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return "unknown"
}
