package domain

import (
	"context"
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// ============ Repository interfaces ============

// PersonRepository stores requesters.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) (*entity.Person, error)

	GetByID(ctx context.Context, id int64) (*entity.Person, error)

	// GetByName resolves a person by exact name; sync uses it to reuse
	// requesters across imported rows.
	GetByName(ctx context.Context, name string) (*entity.Person, error)

	List(ctx context.Context) ([]*entity.Person, error)

	Update(ctx context.Context, person *entity.Person) (*entity.Person, error)

	Delete(ctx context.Context, id int64) error
}

// LocationRepository stores places.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) (*entity.Location, error)

	GetByID(ctx context.Context, id int64) (*entity.Location, error)

	List(ctx context.Context) ([]*entity.Location, error)

	Update(ctx context.Context, location *entity.Location) (*entity.Location, error)

	Delete(ctx context.Context, id int64) error
}

// ResponsableRepository stores staff members.
type ResponsableRepository interface {
	Create(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error)

	GetByID(ctx context.Context, id int64) (*entity.Responsable, error)

	List(ctx context.Context) ([]*entity.Responsable, error)

	Update(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error)

	Delete(ctx context.Context, id int64) error
}

// SolicitudRepository stores case records.
type SolicitudRepository interface {
	Create(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error)

	GetByID(ctx context.Context, id int64) (*entity.SolicitudDetail, error)

	// ListByConfig returns the records imported from one planilla, with
	// references resolved.
	ListByConfig(ctx context.Context, configID int64) ([]*entity.SolicitudDetail, error)

	// ListOrders returns records without an amount; ListSubsidies those
	// with one.
	ListOrders(ctx context.Context) ([]*entity.SolicitudDetail, error)
	ListSubsidies(ctx context.Context) ([]*entity.SolicitudDetail, error)

	Update(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error)

	Delete(ctx context.Context, id int64) error

	// ExistsDuplicate reports whether an equal imported record already
	// exists (same person, description and entry date).
	ExistsDuplicate(ctx context.Context, personID int64, description string, entryDate *time.Time) (bool, error)

	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

// ============ Usecase interfaces ============

// SolicitudUsecase is the case-record business logic.
type SolicitudUsecase interface {
	Create(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error)

	Get(ctx context.Context, id int64) (*entity.SolicitudDetail, error)

	ListByConfig(ctx context.Context, configID int64) ([]*entity.SolicitudDetail, error)

	ListOrders(ctx context.Context) ([]*entity.SolicitudDetail, error)
	ListSubsidies(ctx context.Context) ([]*entity.SolicitudDetail, error)

	Update(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error)

	Delete(ctx context.Context, id int64) error
}

// DashboardUsecase aggregates the totals shown on the dashboard.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

// PersonUsecase manages requesters.
type PersonUsecase interface {
	Create(ctx context.Context, person *entity.Person) (*entity.Person, error)
	Get(ctx context.Context, id int64) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	Update(ctx context.Context, person *entity.Person) (*entity.Person, error)
	Delete(ctx context.Context, id int64) error
}

// LocationUsecase manages places.
type LocationUsecase interface {
	Create(ctx context.Context, location *entity.Location) (*entity.Location, error)
	Get(ctx context.Context, id int64) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) (*entity.Location, error)
	Delete(ctx context.Context, id int64) error
}

// ResponsableUsecase manages staff members.
type ResponsableUsecase interface {
	Create(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error)
	Get(ctx context.Context, id int64) (*entity.Responsable, error)
	List(ctx context.Context) ([]*entity.Responsable, error)
	Update(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error)
	Delete(ctx context.Context, id int64) error
}
