package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	resp "store-console/internal/transport/http/response"
)

// LoginGuard 每 IP 固定窗口限制登录尝试（INCR + EXPIRE）。
// rdb 为 nil（未配置 redis）时直接放行；redis 故障也放行，只记日志。
func LoginGuard(rdb *redis.Client, maxAttempts int, window time.Duration, l *zap.Logger) gin.HandlerFunc {
	if rdb == nil || maxAttempts <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := "loginguard:" + c.ClientIP()
		n, err := rdb.Incr(c, key).Result()
		if err != nil {
			l.Warn("login guard unavailable", zap.Error(err))
			c.Next()
			return
		}
		if n == 1 {
			_ = rdb.Expire(c, key, window).Err()
		}
		if n > int64(maxAttempts) {
			resp.AbortErr(c, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}
		c.Next()
	}
}
