package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "api request").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+entityName+" ID", raw)
	}
	return uint(id), nil
}

// OptionalIntQuery returns nil when key is absent and a ValidationError
// naming key when the value is not an integer.
func OptionalIntQuery(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewInvalidParamError(key, "must be an integer")
	}
	return &n, nil
}

// OptionalFloatQuery is OptionalIntQuery for decimal values. NaN and
// infinities are rejected even though strconv accepts them.
func OptionalFloatQuery(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewInvalidParamError(key, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.NewInvalidParamError(key, "must be a finite number")
	}
	return &f, nil
}
