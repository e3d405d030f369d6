package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/bookora/scheduler-api/internal/httperr"
)

// RateLimit limita requests por IP+rota usando janela fixa no Redis.
// Com rdb nil (Redis não configurado) ou Redis fora do ar, degrada
// liberando — booking público nunca cai junto com o cache.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			httperr.Write(c, http.StatusTooManyRequests,
				"rate_limited", "Muitas requisições. Tente de novo em instantes.")
			c.Abort()
			return
		}

		c.Next()
	}
}
