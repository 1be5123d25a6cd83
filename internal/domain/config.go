package domain

import (
	"context"
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// ============ Repository interfaces ============

// SheetsConfigRepository stores the configured planillas.
type SheetsConfigRepository interface {
	Create(ctx context.Context, spreadsheetID, sheetName string) (*entity.SheetsConfig, error)

	GetByID(ctx context.Context, id int64) (*entity.SheetsConfig, error)

	List(ctx context.Context) ([]*entity.SheetsConfig, error)

	// UpdateStatus records the outcome of a synchronization run.
	UpdateStatus(ctx context.Context, id int64, status string, lastSync time.Time) error

	Delete(ctx context.Context, id int64) error
}

// ProjectRepository stores one snapshot per config.
type ProjectRepository interface {
	// Upsert replaces the config's snapshot wholesale.
	Upsert(ctx context.Context, project *entity.Project) (*entity.Project, error)

	GetByConfigID(ctx context.Context, configID int64) (*entity.Project, error)
}

// ============ Usecase interfaces ============

// SheetsConfigUsecase manages planilla configurations.
type SheetsConfigUsecase interface {
	CreateConfig(ctx context.Context, spreadsheetID, sheetName string) (*entity.SheetsConfig, error)

	GetConfig(ctx context.Context, id int64) (*entity.SheetsConfig, error)

	ListConfigs(ctx context.Context) ([]*entity.SheetsConfig, error)

	DeleteConfig(ctx context.Context, id int64) error
}

// ProjectUsecase exposes stored snapshots.
type ProjectUsecase interface {
	// GetByConfig returns the snapshot for a config, or not-found when
	// the config has never synchronized.
	GetByConfig(ctx context.Context, configID int64) (*entity.Project, error)
}
