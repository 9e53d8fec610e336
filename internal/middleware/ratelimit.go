package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// 클라이언트 IP별 요청 제한, 초과 시 onLimit 호출
// perMinute <= 0 이면 제한 없음
func RateLimit(perMinute int, onLimit gin.HandlerFunc) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 한 번에 perMinute 만큼 허용, 이후 분당 perMinute 로 회복
			return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute), time.Hour
		},
		onLimit,
	)
}
