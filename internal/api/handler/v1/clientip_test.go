package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		want      string
	}{
		{
			name:      "first forwarded entry wins",
			forwarded: "203.0.113.7, 10.0.0.1, 172.16.0.2",
			realIP:    "198.51.100.9",
			want:      "203.0.113.7",
		},
		{
			name:      "forwarded entry is trimmed",
			forwarded: "  203.0.113.7  ",
			want:      "203.0.113.7",
		},
		{
			name:   "real ip as fallback",
			realIP: "198.51.100.9",
			want:   "198.51.100.9",
		},
		{
			name: "unknown when no headers",
			want: "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", nil)
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				r.Header.Set("X-Real-IP", tc.realIP)
			}

			assert.Equal(t, tc.want, clientIP(r))
		})
	}
}
