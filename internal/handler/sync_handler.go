package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// SyncHandler triggers planilla synchronization.
type SyncHandler struct {
	usecase domain.SyncUsecase
	logger  *slog.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(usecase domain.SyncUsecase, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{usecase: usecase, logger: logger}
}

// Sync runs a synchronization for one configuration. The run is
// synchronous: the response carries the import counters.
// POST /api/sync/:id
func (h *SyncHandler) Sync(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	result, err := h.usecase.Sync(ctx, id)
	if err != nil {
		h.logger.Error("sync failed", "error", err, "config_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSyncResultResponse(result))
}
