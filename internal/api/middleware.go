package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// AIRateLimit AI 路由令牌桶限流。重试包装器会阻塞请求最长
// (MaxAttempts-1)*BaseDelay，限流挡住过量并发对下游的放大。
func AIRateLimit(limit float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "too many requests, please slow down",
			})
			return
		}
		c.Next()
	}
}
