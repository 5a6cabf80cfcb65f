package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{"https://example.com", "example.com"},
		{"http://example.com:3000", "example.com:3000"},
		{"https://Admin.Example.COM", "admin.example.com"},
		{"example.com", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, originHost(tt.origin), "origin %q", tt.origin)
	}
}

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"example.com", "*.example.com", "localhost:*"}

	allowed := []string{
		"example.com",
		"admin.example.com",
		"deep.sub.example.com",
		"localhost:3000",
		"localhost:5173",
	}
	for _, host := range allowed {
		assert.True(t, originAllowed(patterns, host), "host %q", host)
	}

	denied := []string{
		"evil.com",
		"example.com.evil.com",
		"notlocalhost:3000",
	}
	for _, host := range denied {
		assert.False(t, originAllowed(patterns, host), "host %q", host)
	}
}
