package controllers

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HealthController struct {
	pool        *pgxpool.Pool
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewHealthController(pool *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger) *HealthController {
	return &HealthController{pool: pool, redisClient: redisClient, logger: logger}
}

// Health reports liveness plus the state of each backing store. The endpoint
// itself always answers 200; "degraded" in the body signals a broken backend.
func (c *HealthController) Health(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	dbStatus := "connected"
	if err := c.pool.Ping(reqCtx); err != nil {
		c.logger.Warn("health check: database unreachable", zap.Error(err))
		dbStatus = "disconnected"
	}

	cacheStatus := "connected"
	if err := c.redisClient.Ping(reqCtx).Err(); err != nil {
		c.logger.Warn("health check: redis unreachable", zap.Error(err))
		cacheStatus = "disconnected"
	}

	status := "ok"
	if dbStatus != "connected" || cacheStatus != "connected" {
		status = "degraded"
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"status":    status,
		"database":  dbStatus,
		"cache":     cacheStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
