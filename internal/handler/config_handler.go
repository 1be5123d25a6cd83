package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// ConfigHandler handles planilla-configuration requests.
type ConfigHandler struct {
	usecase domain.SheetsConfigUsecase
	logger  *slog.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(usecase domain.SheetsConfigUsecase, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{usecase: usecase, logger: logger}
}

// Create registers a planilla to mirror
// POST /api/config
func (h *ConfigHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateConfigRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid config request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	cfg, err := h.usecase.CreateConfig(ctx, req.SpreadsheetID, req.SheetName)
	if err != nil {
		h.logger.Error("failed to create config", "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToConfigResponse(cfg))
}

// Get retrieves one configuration
// GET /api/config/:id
func (h *ConfigHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	cfg, err := h.usecase.GetConfig(ctx, id)
	if err != nil {
		h.logger.Error("failed to get config", "error", err, "config_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToConfigResponse(cfg))
}

// List retrieves all configurations
// GET /api/config
func (h *ConfigHandler) List(ctx context.Context, c *app.RequestContext) {
	configs, err := h.usecase.ListConfigs(ctx)
	if err != nil {
		h.logger.Error("failed to list configs", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToConfigListResponse(configs)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// Delete removes a configuration and its imported data
// DELETE /api/config/:id
func (h *ConfigHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if err := h.usecase.DeleteConfig(ctx, id); err != nil {
		h.logger.Error("failed to delete config", "error", err, "config_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"message": "config deleted successfully",
	})
}

// parseID reads a positive numeric path parameter.
func parseID(c *app.RequestContext, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidInputError("invalid " + name)
	}
	return id, nil
}
