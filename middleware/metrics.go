package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"usprime-go-admin/pkg/monitoring"
)

// Metrics Prometheus指标采集中间件
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
