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

// configRepository implements domain.SheetsConfigRepository over sqlite.
type configRepository struct {
	db *sqlx.DB
}

// NewConfigRepository builds the sqlite-backed planilla store.
func NewConfigRepository(db *sqlx.DB) domain.SheetsConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Create(ctx context.Context, spreadsheetID, sheetName string) (*entity.SheetsConfig, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sheets_configs (spreadsheet_id, sheet_name, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		spreadsheetID, sheetName, entity.SyncPending, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("SheetsConfig", sheetName)
		}
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read config id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *configRepository) GetByID(ctx context.Context, id int64) (*entity.SheetsConfig, error) {
	var row configRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM sheets_configs WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("SheetsConfig", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return row.toEntity(), nil
}

func (r *configRepository) List(ctx context.Context) ([]*entity.SheetsConfig, error) {
	var rows []configRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM sheets_configs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	result := make([]*entity.SheetsConfig, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *configRepository) UpdateStatus(ctx context.Context, id int64, status string, lastSync time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sheets_configs SET status = ?, last_sync = ?, updated_at = ? WHERE id = ?`,
		status, lastSync, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update config status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("SheetsConfig", fmt.Sprint(id))
	}
	return nil
}

func (r *configRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sheets_configs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("SheetsConfig", fmt.Sprint(id))
	}
	return nil
}
