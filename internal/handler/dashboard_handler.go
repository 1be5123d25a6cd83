package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// DashboardHandler serves the aggregate totals.
type DashboardHandler struct {
	usecase domain.DashboardUsecase
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(usecase domain.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: usecase, logger: logger}
}

// Stats returns order and subsidy totals
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(ctx context.Context, c *app.RequestContext) {
	stats, err := h.usecase.Stats(ctx)
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDashboardStatsResponse(stats))
}
