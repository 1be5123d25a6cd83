package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// solicitudUsecase implements domain.SolicitudUsecase.
type solicitudUsecase struct {
	solicitudRepo domain.SolicitudRepository
	personRepo    domain.PersonRepository
	logger        *slog.Logger
}

// NewSolicitudUsecase builds the case-record business logic.
func NewSolicitudUsecase(
	solicitudRepo domain.SolicitudRepository,
	personRepo domain.PersonRepository,
	logger *slog.Logger,
) domain.SolicitudUsecase {
	return &solicitudUsecase{
		solicitudRepo: solicitudRepo,
		personRepo:    personRepo,
		logger:        logger,
	}
}

func (u *solicitudUsecase) Create(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error) {
	if err := u.validate(ctx, s); err != nil {
		return nil, err
	}

	created, err := u.solicitudRepo.Create(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create solicitud: %w", err)
	}

	u.logger.Info("solicitud created", "solicitud_id", created.ID, "person_id", created.PersonID, "subsidy", created.IsSubsidy())
	return created, nil
}

func (u *solicitudUsecase) Get(ctx context.Context, id int64) (*entity.SolicitudDetail, error) {
	return u.solicitudRepo.GetByID(ctx, id)
}

func (u *solicitudUsecase) ListByConfig(ctx context.Context, configID int64) ([]*entity.SolicitudDetail, error) {
	list, err := u.solicitudRepo.ListByConfig(ctx, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solicitudes: %w", err)
	}
	return list, nil
}

func (u *solicitudUsecase) ListOrders(ctx context.Context) ([]*entity.SolicitudDetail, error) {
	list, err := u.solicitudRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

func (u *solicitudUsecase) ListSubsidies(ctx context.Context) ([]*entity.SolicitudDetail, error) {
	list, err := u.solicitudRepo.ListSubsidies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subsidies: %w", err)
	}
	return list, nil
}

func (u *solicitudUsecase) Update(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error) {
	if _, err := u.solicitudRepo.GetByID(ctx, s.ID); err != nil {
		return nil, err
	}
	if err := u.validate(ctx, s); err != nil {
		return nil, err
	}

	updated, err := u.solicitudRepo.Update(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to update solicitud: %w", err)
	}

	u.logger.Info("solicitud updated", "solicitud_id", updated.ID, "status", updated.Status)
	return updated, nil
}

func (u *solicitudUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.solicitudRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.solicitudRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete solicitud: %w", err)
	}
	u.logger.Info("solicitud deleted", "solicitud_id", id)
	return nil
}

// validate checks field domains and that the referenced person exists.
func (u *solicitudUsecase) validate(ctx context.Context, s *entity.Solicitud) error {
	if strings.TrimSpace(s.Description) == "" {
		return domain.NewInvalidInputError("description is required")
	}
	if s.Status == "" {
		s.Status = entity.StatusPending
	}
	if !entity.ValidStatus(s.Status) {
		return domain.NewInvalidInputError("invalid status")
	}
	if s.Origin == "" {
		s.Origin = entity.OriginNote
	}
	if !entity.ValidOrigin(s.Origin) {
		return domain.NewInvalidInputError("invalid origin")
	}
	if s.Amount != nil && *s.Amount < 0 {
		return domain.NewInvalidInputError("amount must not be negative")
	}
	if s.PersonID == 0 {
		return domain.NewInvalidInputError("personId is required")
	}
	if _, err := u.personRepo.GetByID(ctx, s.PersonID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewInvalidInputError("referenced person does not exist")
		}
		return err
	}
	return nil
}

// ============ dashboard ============

// dashboardUsecase implements domain.DashboardUsecase.
type dashboardUsecase struct {
	solicitudRepo domain.SolicitudRepository
}

// NewDashboardUsecase builds the dashboard aggregation.
func NewDashboardUsecase(solicitudRepo domain.SolicitudRepository) domain.DashboardUsecase {
	return &dashboardUsecase{solicitudRepo: solicitudRepo}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := u.solicitudRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}
