package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// projectRepository implements domain.ProjectRepository over sqlite.
type projectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository builds the sqlite-backed snapshot store.
func NewProjectRepository(db *sqlx.DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

// Upsert replaces the config's snapshot in place; each config owns at
// most one project row.
func (r *projectRepository) Upsert(ctx context.Context, p *entity.Project) (*entity.Project, error) {
	now := time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (config_id, name, data_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (config_id) DO UPDATE SET
		   name = excluded.name,
		   data_json = excluded.data_json,
		   updated_at = excluded.updated_at`,
		p.ConfigID, p.Name, p.DataJSON, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert project: %w", err)
	}
	return r.GetByConfigID(ctx, p.ConfigID)
}

func (r *projectRepository) GetByConfigID(ctx context.Context, configID int64) (*entity.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM projects WHERE config_id = ?`, configID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Project", fmt.Sprint(configID))
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return row.toEntity(), nil
}
