package usecase

import (
	"context"
	"log/slog"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// projectUsecase implements domain.ProjectUsecase.
type projectUsecase struct {
	projectRepo domain.ProjectRepository
	configRepo  domain.SheetsConfigRepository
	logger      *slog.Logger
}

// NewProjectUsecase builds the snapshot read path.
func NewProjectUsecase(
	projectRepo domain.ProjectRepository,
	configRepo domain.SheetsConfigRepository,
	logger *slog.Logger,
) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// GetByConfig returns the stored snapshot. The config is resolved first
// so an unknown id and a never-synced config produce distinct errors.
func (u *projectUsecase) GetByConfig(ctx context.Context, configID int64) (*entity.Project, error) {
	if _, err := u.configRepo.GetByID(ctx, configID); err != nil {
		return nil, err
	}
	return u.projectRepo.GetByConfigID(ctx, configID)
}
