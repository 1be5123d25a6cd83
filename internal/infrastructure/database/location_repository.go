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

// locationRepository implements domain.LocationRepository over sqlite.
type locationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository builds the sqlite-backed place store.
func NewLocationRepository(db *sqlx.DB) domain.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, l *entity.Location) (*entity.Location, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (name, parent_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		l.Name, toNullInt64(l.ParentID), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read location id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	var row locationRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM locations WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Location", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return row.toEntity(), nil
}

func (r *locationRepository) List(ctx context.Context) ([]*entity.Location, error) {
	var rows []locationRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	result := make([]*entity.Location, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *locationRepository) Update(ctx context.Context, l *entity.Location) (*entity.Location, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, parent_id = ?, updated_at = ? WHERE id = ?`,
		l.Name, toNullInt64(l.ParentID), time.Now(), l.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.NewNotFoundError("Location", fmt.Sprint(l.ID))
	}
	return r.GetByID(ctx, l.ID)
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("Location", fmt.Sprint(id))
	}
	return nil
}
