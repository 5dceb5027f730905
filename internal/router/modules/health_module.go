package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogspace/internal/container"
	"blogspace/pkg/response"
)

// HealthModule exposes liveness plus dependency status. The endpoint answers
// 200 even while the database is down: the process deliberately stays up in
// degraded mode.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, 2*time.Second)
		defer cancel()

		dbStatus := "down"
		if pool := container.GetPGPool(); pool != nil {
			if err := pool.Ping(ctx); err == nil {
				dbStatus = "up"
			}
		}
		redisStatus := "down"
		if rdb := container.GetRedis(); rdb != nil {
			if err := rdb.Ping(ctx).Err(); err == nil {
				redisStatus = "up"
			}
		}
		response.Success(c, http.StatusOK, gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}, "ok", nil)
	})
}

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}
