package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/handler/dto"
)

// ============ persons ============

// PersonHandler handles requester requests.
type PersonHandler struct {
	usecase domain.PersonUsecase
	logger  *slog.Logger
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(usecase domain.PersonUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{usecase: usecase, logger: logger}
}

// Create creates a requester
// POST /api/persons
func (h *PersonHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.PersonRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid person request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	created, err := h.usecase.Create(ctx, req.ToEntity())
	if err != nil {
		h.logger.Error("failed to create person", "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToPersonResponse(created))
}

// Get retrieves one requester
// GET /api/persons/:id
func (h *PersonHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	person, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get person", "error", err, "person_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToPersonResponse(person))
}

// List retrieves all requesters
// GET /api/persons
func (h *PersonHandler) List(ctx context.Context, c *app.RequestContext) {
	persons, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("failed to list persons", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToPersonListResponse(persons)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// Update replaces a requester
// PUT /api/persons/:id
func (h *PersonHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	var req dto.PersonRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid person request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	person := req.ToEntity()
	person.ID = id

	updated, err := h.usecase.Update(ctx, person)
	if err != nil {
		h.logger.Error("failed to update person", "error", err, "person_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToPersonResponse(updated))
}

// Delete removes a requester
// DELETE /api/persons/:id
func (h *PersonHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if err := h.usecase.Delete(ctx, id); err != nil {
		h.logger.Error("failed to delete person", "error", err, "person_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"message": "person deleted successfully",
	})
}

// ============ locations ============

// LocationHandler handles place requests.
type LocationHandler struct {
	usecase domain.LocationUsecase
	logger  *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(usecase domain.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{usecase: usecase, logger: logger}
}

// Create creates a place
// POST /api/locations
func (h *LocationHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.LocationRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid location request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	created, err := h.usecase.Create(ctx, req.ToEntity())
	if err != nil {
		h.logger.Error("failed to create location", "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToLocationResponse(created))
}

// Get retrieves one place
// GET /api/locations/:id
func (h *LocationHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	location, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get location", "error", err, "location_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToLocationResponse(location))
}

// List retrieves all places
// GET /api/locations
func (h *LocationHandler) List(ctx context.Context, c *app.RequestContext) {
	locations, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("failed to list locations", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToLocationListResponse(locations)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// Update replaces a place
// PUT /api/locations/:id
func (h *LocationHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	var req dto.LocationRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid location request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	location := req.ToEntity()
	location.ID = id

	updated, err := h.usecase.Update(ctx, location)
	if err != nil {
		h.logger.Error("failed to update location", "error", err, "location_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToLocationResponse(updated))
}

// Delete removes a place
// DELETE /api/locations/:id
func (h *LocationHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if err := h.usecase.Delete(ctx, id); err != nil {
		h.logger.Error("failed to delete location", "error", err, "location_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"message": "location deleted successfully",
	})
}

// ============ responsables ============

// ResponsableHandler handles staff-member requests.
type ResponsableHandler struct {
	usecase domain.ResponsableUsecase
	logger  *slog.Logger
}

// NewResponsableHandler creates a new responsable handler
func NewResponsableHandler(usecase domain.ResponsableUsecase, logger *slog.Logger) *ResponsableHandler {
	return &ResponsableHandler{usecase: usecase, logger: logger}
}

// Create creates a staff member
// POST /api/responsables
func (h *ResponsableHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.ResponsableRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid responsable request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	created, err := h.usecase.Create(ctx, req.ToEntity())
	if err != nil {
		h.logger.Error("failed to create responsable", "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToResponsableResponse(created))
}

// Get retrieves one staff member
// GET /api/responsables/:id
func (h *ResponsableHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	responsable, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get responsable", "error", err, "responsable_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToResponsableResponse(responsable))
}

// List retrieves all staff members
// GET /api/responsables
func (h *ResponsableHandler) List(ctx context.Context, c *app.RequestContext) {
	responsables, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Error("failed to list responsables", "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToResponsableListResponse(responsables)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// Update replaces a staff member
// PUT /api/responsables/:id
func (h *ResponsableHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	var req dto.ResponsableRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid responsable request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	responsable := req.ToEntity()
	responsable.ID = id

	updated, err := h.usecase.Update(ctx, responsable)
	if err != nil {
		h.logger.Error("failed to update responsable", "error", err, "responsable_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToResponsableResponse(updated))
}

// Delete removes a staff member
// DELETE /api/responsables/:id
func (h *ResponsableHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	if err := h.usecase.Delete(ctx, id); err != nil {
		h.logger.Error("failed to delete responsable", "error", err, "responsable_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{
		"message": "responsable deleted successfully",
	})
}
