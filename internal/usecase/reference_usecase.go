package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// ============ persons ============

// personUsecase implements domain.PersonUsecase.
type personUsecase struct {
	repo   domain.PersonRepository
	logger *slog.Logger
}

// NewPersonUsecase builds the requester business logic.
func NewPersonUsecase(repo domain.PersonRepository, logger *slog.Logger) domain.PersonUsecase {
	return &personUsecase{repo: repo, logger: logger}
}

func (u *personUsecase) Create(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	if err := validatePerson(person); err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	u.logger.Info("person created", "person_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *personUsecase) Get(ctx context.Context, id int64) (*entity.Person, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *personUsecase) List(ctx context.Context) ([]*entity.Person, error) {
	return u.repo.List(ctx)
}

func (u *personUsecase) Update(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	if err := validatePerson(person); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, person)
	if err != nil {
		return nil, err
	}

	u.logger.Info("person updated", "person_id", updated.ID)
	return updated, nil
}

func (u *personUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("person deleted", "person_id", id)
	return nil
}

func validatePerson(person *entity.Person) error {
	if strings.TrimSpace(person.Name) == "" {
		return domain.NewInvalidInputError("name is required")
	}
	if person.Type == "" {
		person.Type = entity.PersonIndividual
	}
	if person.Type != entity.PersonIndividual && person.Type != entity.PersonOrganization {
		return domain.NewInvalidInputError("invalid person type")
	}
	return nil
}

// ============ locations ============

// locationUsecase implements domain.LocationUsecase.
type locationUsecase struct {
	repo   domain.LocationRepository
	logger *slog.Logger
}

// NewLocationUsecase builds the place business logic.
func NewLocationUsecase(repo domain.LocationRepository, logger *slog.Logger) domain.LocationUsecase {
	return &locationUsecase{repo: repo, logger: logger}
}

func (u *locationUsecase) Create(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}
	if err := u.checkParent(ctx, location); err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	u.logger.Info("location created", "location_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *locationUsecase) Get(ctx context.Context, id int64) (*entity.Location, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *locationUsecase) List(ctx context.Context) ([]*entity.Location, error) {
	return u.repo.List(ctx)
}

func (u *locationUsecase) Update(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}
	if location.ParentID != nil && *location.ParentID == location.ID {
		return nil, domain.NewInvalidInputError("location cannot be its own parent")
	}
	if err := u.checkParent(ctx, location); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, location)
	if err != nil {
		return nil, err
	}

	u.logger.Info("location updated", "location_id", updated.ID)
	return updated, nil
}

func (u *locationUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("location deleted", "location_id", id)
	return nil
}

func (u *locationUsecase) checkParent(ctx context.Context, location *entity.Location) error {
	if location.ParentID == nil {
		return nil
	}
	if _, err := u.repo.GetByID(ctx, *location.ParentID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewInvalidInputError("parent location does not exist")
		}
		return err
	}
	return nil
}

// ============ responsables ============

// responsableUsecase implements domain.ResponsableUsecase.
type responsableUsecase struct {
	repo   domain.ResponsableRepository
	logger *slog.Logger
}

// NewResponsableUsecase builds the staff business logic.
func NewResponsableUsecase(repo domain.ResponsableRepository, logger *slog.Logger) domain.ResponsableUsecase {
	return &responsableUsecase{repo: repo, logger: logger}
}

func (u *responsableUsecase) Create(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error) {
	if strings.TrimSpace(responsable.Name) == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}

	created, err := u.repo.Create(ctx, responsable)
	if err != nil {
		return nil, fmt.Errorf("failed to create responsable: %w", err)
	}

	u.logger.Info("responsable created", "responsable_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *responsableUsecase) Get(ctx context.Context, id int64) (*entity.Responsable, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *responsableUsecase) List(ctx context.Context) ([]*entity.Responsable, error) {
	return u.repo.List(ctx)
}

func (u *responsableUsecase) Update(ctx context.Context, responsable *entity.Responsable) (*entity.Responsable, error) {
	if strings.TrimSpace(responsable.Name) == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}

	updated, err := u.repo.Update(ctx, responsable)
	if err != nil {
		return nil, err
	}

	u.logger.Info("responsable updated", "responsable_id", updated.ID)
	return updated, nil
}

func (u *responsableUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("responsable deleted", "responsable_id", id)
	return nil
}
