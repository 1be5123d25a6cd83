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

// personRepository implements domain.PersonRepository over sqlite.
type personRepository struct {
	db *sqlx.DB
}

// NewPersonRepository builds the sqlite-backed requester store.
func NewPersonRepository(db *sqlx.DB) domain.PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	if p.Type == "" {
		p.Type = entity.PersonIndividual
	}
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO persons (name, document_id, phone, address, type, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.DocumentID, p.Phone, p.Address, p.Type, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("Person", p.Name)
		}
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read person id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	var row personRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM persons WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Person", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return row.toEntity(), nil
}

func (r *personRepository) GetByName(ctx context.Context, name string) (*entity.Person, error) {
	var row personRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM persons WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Person", name)
		}
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}
	return row.toEntity(), nil
}

func (r *personRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var rows []personRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM persons ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	result := make([]*entity.Person, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *personRepository) Update(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE persons SET name = ?, document_id = ?, phone = ?, address = ?, type = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.DocumentID, p.Phone, p.Address, p.Type, time.Now(), p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("Person", p.Name)
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.NewNotFoundError("Person", fmt.Sprint(p.ID))
	}
	return r.GetByID(ctx, p.ID)
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("Person", fmt.Sprint(id))
	}
	return nil
}
