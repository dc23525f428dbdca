package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/logger"
)

// quietPaths are polled by probes and scrapers; successful hits log at debug.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}
		if requestID := GetRequestID(c); requestID != "" {
			fields = append(fields, "request_id", requestID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			if _, quiet := quietPaths[c.Request.URL.Path]; quiet {
				log.Debugw("request served", fields...)
				return
			}
			log.Infow("request served", fields...)
		}
	}
}
