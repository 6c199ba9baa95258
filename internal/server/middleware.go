package server

import (
	"time"

	"name-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware tags each request with an ID and logs it with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}
