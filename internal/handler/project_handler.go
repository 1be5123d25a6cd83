package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// ProjectHandler serves stored planilla snapshots.
type ProjectHandler struct {
	usecase domain.ProjectUsecase
	logger  *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(usecase domain.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{usecase: usecase, logger: logger}
}

// GetByConfig returns the snapshot a configuration last synchronized.
// GET /api/projects/by-config/:configId
func (h *ProjectHandler) GetByConfig(ctx context.Context, c *app.RequestContext) {
	configID, err := parseID(c, "configId")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	project, err := h.usecase.GetByConfig(ctx, configID)
	if err != nil {
		h.logger.Error("failed to get project", "error", err, "config_id", configID)
		ErrorResponse(c, err)
		return
	}

	resp, err := dto.ToProjectResponse(project)
	if err != nil {
		h.logger.Error("stored snapshot is not valid json", "error", err, "config_id", configID)
		ErrorResponse(c, domain.NewInternalError(err))
		return
	}

	SuccessResponse(c, resp)
}
