package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

// ClientContext attaches the caller's IP and user agent to the request context
// so audit events can record them.
func ClientContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := domain.WithClientContext(c.Request.Context(), &domain.ClientContext{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if userID := c.GetString(KeyUserID); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
