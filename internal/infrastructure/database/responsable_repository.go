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

// responsableRepository implements domain.ResponsableRepository over
// sqlite.
type responsableRepository struct {
	db *sqlx.DB
}

// NewResponsableRepository builds the sqlite-backed staff store.
func NewResponsableRepository(db *sqlx.DB) domain.ResponsableRepository {
	return &responsableRepository{db: db}
}

func (r *responsableRepository) Create(ctx context.Context, resp *entity.Responsable) (*entity.Responsable, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO responsables (name, area, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		resp.Name, resp.Area, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create responsable: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read responsable id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *responsableRepository) GetByID(ctx context.Context, id int64) (*entity.Responsable, error) {
	var row responsableRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM responsables WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Responsable", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get responsable: %w", err)
	}
	return row.toEntity(), nil
}

func (r *responsableRepository) List(ctx context.Context) ([]*entity.Responsable, error) {
	var rows []responsableRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM responsables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list responsables: %w", err)
	}

	result := make([]*entity.Responsable, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *responsableRepository) Update(ctx context.Context, resp *entity.Responsable) (*entity.Responsable, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE responsables SET name = ?, area = ?, updated_at = ? WHERE id = ?`,
		resp.Name, resp.Area, time.Now(), resp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update responsable: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.NewNotFoundError("Responsable", fmt.Sprint(resp.ID))
	}
	return r.GetByID(ctx, resp.ID)
}

func (r *responsableRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM responsables WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete responsable: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("Responsable", fmt.Sprint(id))
	}
	return nil
}
