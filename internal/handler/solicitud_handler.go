package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// SolicitudHandler handles case-record requests. The orders and
// subsidies routes are views over the same records: a record without an
// amount is an order, one with an amount is a subsidy.
type SolicitudHandler struct {
	usecase domain.SolicitudUsecase
	logger  *slog.Logger
}

// NewSolicitudHandler creates a new solicitud handler
func NewSolicitudHandler(usecase domain.SolicitudUsecase, logger *slog.Logger) *SolicitudHandler {
	return &SolicitudHandler{usecase: usecase, logger: logger}
}

// Create creates a case record
// POST /api/solicitudes
func (h *SolicitudHandler) Create(ctx context.Context, c *app.RequestContext) {
	s, ok := h.bindSolicitud(c)
	if !ok {
		return
	}
	h.create(ctx, c, s)
}

// Get retrieves one case record with its references resolved
// GET /api/solicitudes/:id
func (h *SolicitudHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	detail, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get solicitud", "error", err, "solicitud_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSolicitudResponse(detail))
}

// ListByConfig lists the records imported from one planilla
// GET /api/solicitudes/config/:configId
func (h *SolicitudHandler) ListByConfig(ctx context.Context, c *app.RequestContext) {
	configID, err := parseID(c, "configId")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	details, err := h.usecase.ListByConfig(ctx, configID)
	if err != nil {
		h.logger.Error("failed to list solicitudes", "error", err, "config_id", configID)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToSolicitudListResponse(details)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// ListOrders lists records without an amount
// GET /api/orders
func (h *SolicitudHandler) ListOrders(ctx context.Context, c *app.RequestContext) {
	details, err := h.usecase.ListOrders(ctx)
	if err != nil {
		h.logger.Error("failed to list orders", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToSolicitudListResponse(details)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// ListSubsidies lists records carrying an amount
// GET /api/subsidies
func (h *SolicitudHandler) ListSubsidies(ctx context.Context, c *app.RequestContext) {
	details, err := h.usecase.ListSubsidies(ctx)
	if err != nil {
		h.logger.Error("failed to list subsidies", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToSolicitudListResponse(details)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// CreateOrder creates a record without an amount
// POST /api/orders
func (h *SolicitudHandler) CreateOrder(ctx context.Context, c *app.RequestContext) {
	s, ok := h.bindSolicitud(c)
	if !ok {
		return
	}
	if s.Amount != nil {
		ErrorResponse(c, domain.NewInvalidInputError("an order must not carry an amount"))
		return
	}
	h.create(ctx, c, s)
}

// CreateSubsidy creates a record carrying an amount
// POST /api/subsidies
func (h *SolicitudHandler) CreateSubsidy(ctx context.Context, c *app.RequestContext) {
	s, ok := h.bindSolicitud(c)
	if !ok {
		return
	}
	if s.Amount == nil {
		ErrorResponse(c, domain.NewInvalidInputError("a subsidy requires an amount"))
		return
	}
	h.create(ctx, c, s)
}

// Update replaces a case record
// PUT /api/solicitudes/:id
func (h *SolicitudHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	s, ok := h.bindSolicitud(c)
	if !ok {
		return
	}
	s.ID = id

	if _, err := h.usecase.Update(ctx, s); err != nil {
		h.logger.Error("failed to update solicitud", "error", err, "solicitud_id", id)
		ErrorResponse(c, err)
		return
	}

	detail, err := h.usecase.Get(ctx, id)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToSolicitudResponse(detail))
}

// Delete removes a case record
// DELETE /api/solicitudes/:id
func (h *SolicitudHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if err := h.usecase.Delete(ctx, id); err != nil {
		h.logger.Error("failed to delete solicitud", "error", err, "solicitud_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"message": "solicitud deleted successfully",
	})
}

func (h *SolicitudHandler) create(ctx context.Context, c *app.RequestContext, s *entity.Solicitud) {
	created, err := h.usecase.Create(ctx, s)
	if err != nil {
		h.logger.Error("failed to create solicitud", "error", err)
		ErrorResponse(c, err)
		return
	}

	detail, err := h.usecase.Get(ctx, created.ID)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, dto.ToSolicitudResponse(detail))
}

func (h *SolicitudHandler) bindSolicitud(c *app.RequestContext) (*entity.Solicitud, bool) {
	var req dto.SolicitudRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid solicitud request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return nil, false
	}

	s, err := req.ToEntity()
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("invalid date, expected YYYY-MM-DD"))
		return nil, false
	}
	return s, true
}
