package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// configUsecase implements domain.SheetsConfigUsecase.
type configUsecase struct {
	configRepo domain.SheetsConfigRepository
	logger     *slog.Logger
}

// NewConfigUsecase builds the planilla-configuration business logic.
func NewConfigUsecase(
	configRepo domain.SheetsConfigRepository,
	logger *slog.Logger,
) domain.SheetsConfigUsecase {
	return &configUsecase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (u *configUsecase) CreateConfig(ctx context.Context, spreadsheetID, sheetName string) (*entity.SheetsConfig, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	sheetName = strings.TrimSpace(sheetName)
	if spreadsheetID == "" {
		return nil, domain.NewInvalidInputError("spreadsheetId is required")
	}
	if sheetName == "" {
		return nil, domain.NewInvalidInputError("sheetName is required")
	}

	cfg, err := u.configRepo.Create(ctx, spreadsheetID, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	u.logger.Info("config created", "config_id", cfg.ID, "sheet", cfg.SheetName)
	return cfg, nil
}

func (u *configUsecase) GetConfig(ctx context.Context, id int64) (*entity.SheetsConfig, error) {
	return u.configRepo.GetByID(ctx, id)
}

func (u *configUsecase) ListConfigs(ctx context.Context) ([]*entity.SheetsConfig, error) {
	configs, err := u.configRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return configs, nil
}

func (u *configUsecase) DeleteConfig(ctx context.Context, id int64) error {
	if _, err := u.configRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.configRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete config: %w", err)
	}
	u.logger.Info("config deleted", "config_id", id)
	return nil
}
