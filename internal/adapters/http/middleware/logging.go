package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/catalog/internal/core/logger"
)

func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		attrs := map[string]any{
			"http.method":      c.Request.Method,
			"http.path":        c.Request.URL.Path,
			"http.route":       c.FullPath(),
			"http.status_code": statusCode,
			"http.duration_ms": duration.Milliseconds(),
		}
		if contentLength := c.Request.Header.Get("Content-Length"); contentLength != "" {
			if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
				attrs["http.request_size"] = size
			}
		}

		level := logger.LogLevelInfo
		if statusCode >= 500 {
			level = logger.LogLevelError
		} else if statusCode >= 400 {
			level = logger.LogLevelWarn
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      level,
			Message:    "HTTP Request",
			Attributes: attrs,
		})
	}
}
