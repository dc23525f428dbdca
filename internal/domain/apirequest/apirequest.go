package apirequest

import (
	"fmt"
	"math"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxMethodLength    = 10
	MaxPathLength      = 2048
	MaxUserAgentLength = 512
	MaxIPAddressLength = 45
	MinResponseCode    = 100
	MaxResponseCode    = 599
)

// APIRequest is a logged HTTP request. Logs are immutable once recorded.
type APIRequest struct {
	id           uint
	method       string
	path         string
	responseCode int
	responseTime float64
	userAgent    string
	ipAddress    string
	createdAt    time.Time
}

// NewAPIRequest validates and normalizes a request log. The method is
// stored upper-case.
func NewAPIRequest(method, path string, responseCode int, responseTime float64, userAgent, ipAddress string) (*APIRequest, error) {
	method = strings.ToUpper(strings.TrimSpace(method))

	if method == "" {
		return nil, fmt.Errorf("method is required")
	}
	if len(method) > MaxMethodLength {
		return nil, fmt.Errorf("method exceeds maximum length of %d characters", MaxMethodLength)
	}
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if utf8.RuneCountInString(path) > MaxPathLength {
		return nil, fmt.Errorf("path exceeds maximum length of %d characters", MaxPathLength)
	}
	if responseCode < MinResponseCode || responseCode > MaxResponseCode {
		return nil, fmt.Errorf("response code must be between %d and %d", MinResponseCode, MaxResponseCode)
	}
	if math.IsNaN(responseTime) || math.IsInf(responseTime, 0) || responseTime < 0 {
		return nil, fmt.Errorf("response time must be a non-negative number of seconds")
	}
	if utf8.RuneCountInString(userAgent) > MaxUserAgentLength {
		return nil, fmt.Errorf("user agent exceeds maximum length of %d characters", MaxUserAgentLength)
	}
	if ipAddress != "" {
		if len(ipAddress) > MaxIPAddressLength {
			return nil, fmt.Errorf("ip address exceeds maximum length of %d characters", MaxIPAddressLength)
		}
		if _, err := netip.ParseAddr(ipAddress); err != nil {
			return nil, fmt.Errorf("invalid ip address: %s", ipAddress)
		}
	}

	return &APIRequest{
		method:       method,
		path:         path,
		responseCode: responseCode,
		responseTime: responseTime,
		userAgent:    userAgent,
		ipAddress:    ipAddress,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructAPIRequest(
	id uint,
	method string,
	path string,
	responseCode int,
	responseTime float64,
	userAgent string,
	ipAddress string,
	createdAt time.Time,
) (*APIRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("api request ID cannot be zero")
	}
	return &APIRequest{
		id:           id,
		method:       method,
		path:         path,
		responseCode: responseCode,
		responseTime: responseTime,
		userAgent:    userAgent,
		ipAddress:    ipAddress,
		createdAt:    createdAt,
	}, nil
}

func (r *APIRequest) ID() uint {
	return r.id
}

func (r *APIRequest) Method() string {
	return r.method
}

func (r *APIRequest) Path() string {
	return r.path
}

func (r *APIRequest) ResponseCode() int {
	return r.responseCode
}

// ResponseTime is in seconds.
func (r *APIRequest) ResponseTime() float64 {
	return r.responseTime
}

func (r *APIRequest) UserAgent() string {
	return r.userAgent
}

func (r *APIRequest) IPAddress() string {
	return r.ipAddress
}

func (r *APIRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *APIRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("api request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("api request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *APIRequest) SetCreatedAt(t time.Time) {
	r.createdAt = t
}

// Field implements query.Record.
func (r *APIRequest) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return r.id, true
	case FieldMethod:
		return r.method, true
	case FieldPath:
		return r.path, true
	case FieldResponseCode:
		return r.responseCode, true
	case FieldResponseTime:
		return r.responseTime, true
	case FieldUserAgent:
		return r.userAgent, true
	case FieldIPAddress:
		return r.ipAddress, true
	case FieldCreatedAt:
		return r.createdAt, true
	}
	return nil, false
}
