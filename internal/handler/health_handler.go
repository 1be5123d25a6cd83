package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/jmoiron/sqlx"
)

// HealthHandler answers the liveness and readiness probes.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping is the basic reachability check
// GET /ping
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness checks the service and its database
// GET /health/ready
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":   "not_ready",
			"database": "unhealthy",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(200, utils.H{
		"status":   "ready",
		"database": "healthy",
	})
}

// Liveness reports the process is alive
// GET /health/live
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
