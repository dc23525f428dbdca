package apirequest

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		code       int
		respTime   float64
		userAgent  string
		ip         string
		wantMethod string
		wantErr    bool
	}{
		{name: "valid", method: "get", path: "/api/tickets", code: 200, respTime: 0.12, wantMethod: "GET"},
		{name: "ipv4", method: "POST", path: "/x", code: 201, ip: "10.0.0.1", wantMethod: "POST"},
		{name: "ipv6", method: " delete ", path: "/x", code: 204, ip: "2001:db8::1", wantMethod: "DELETE"},
		{name: "zero time", method: "GET", path: "/", code: 100, respTime: 0, wantMethod: "GET"},
		{name: "empty method", method: " ", path: "/", code: 200, wantErr: true},
		{name: "method too long", method: "VERYLONGMETHOD", path: "/", code: 200, wantErr: true},
		{name: "empty path", method: "GET", path: "", code: 200, wantErr: true},
		{name: "path too long", method: "GET", path: "/" + strings.Repeat("p", MaxPathLength), code: 200, wantErr: true},
		{name: "code too low", method: "GET", path: "/", code: 99, wantErr: true},
		{name: "code too high", method: "GET", path: "/", code: 600, wantErr: true},
		{name: "negative time", method: "GET", path: "/", code: 200, respTime: -0.1, wantErr: true},
		{name: "nan time", method: "GET", path: "/", code: 200, respTime: math.NaN(), wantErr: true},
		{name: "user agent too long", method: "GET", path: "/", code: 200, userAgent: strings.Repeat("u", MaxUserAgentLength+1), wantErr: true},
		{name: "bad ip", method: "GET", path: "/", code: 200, ip: "999.1.1.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewAPIRequest(tt.method, tt.path, tt.code, tt.respTime, tt.userAgent, tt.ip)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, r.Method())
			assert.Equal(t, tt.path, r.Path())
			assert.Equal(t, tt.code, r.ResponseCode())
			assert.Equal(t, tt.respTime, r.ResponseTime())
			assert.Equal(t, tt.ip, r.IPAddress())
			assert.False(t, r.CreatedAt().IsZero())
		})
	}
}

func TestAPIRequest_SetID(t *testing.T) {
	r, err := NewAPIRequest("GET", "/", 200, 0.1, "", "")
	require.NoError(t, err)

	assert.Error(t, r.SetID(0))
	require.NoError(t, r.SetID(9))
	assert.Equal(t, uint(9), r.ID())
	assert.Error(t, r.SetID(10))
}

func TestReconstructAPIRequest(t *testing.T) {
	_, err := ReconstructAPIRequest(0, "GET", "/", 200, 0.1, "", "", time.Now())
	assert.Error(t, err)

	r, err := ReconstructAPIRequest(2, "GET", "/", 200, 0.1, "curl/8", "127.0.0.1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "curl/8", r.UserAgent())
}
