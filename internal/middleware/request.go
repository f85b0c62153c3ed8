package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"ActorsMoviesAPI/internal/logging"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger puts a request-scoped logger into the request context and writes
// one line per finished request.
func Logger(logger logr.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.WithValues("request_id", c.GetString(requestIDKey))
		c.Request = c.Request.WithContext(logr.NewContext(c.Request.Context(), reqLogger))

		c.Next()

		keysAndValues := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			reqLogger.Info("Request completed with server error", keysAndValues...)
			return
		}
		reqLogger.V(logging.DEFAULT).Info("Request completed", keysAndValues...)
	}
}

// RateLimit rejects requests beyond rps (with the given burst) across the
// whole process. A non-positive rps disables it.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	return func(c *gin.Context) {
		if !limiter.Allow() {
			logging.FromContext(c.Request.Context()).V(logging.DEBUG).Info("Rate limit exceeded", "clientIP", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
