package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/accounts", "/api/v1/accounts"},
		{"/api/v1/accounts/", "/api/v1/accounts/"},
		{"/api/v1/accounts/01ABC123", "/api/v1/accounts/:id"},
		{"/api/v1/accounts/01ABC123/balance", "/api/v1/accounts/:id/balance"},
		{"/api/v1/accounts/01ABC123/transactions", "/api/v1/accounts/:id/transactions"},
		{"/api/v1/transactions/01XYZ789", "/api/v1/transactions/:id"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Fatalf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
