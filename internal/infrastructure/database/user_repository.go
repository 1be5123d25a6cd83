package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// userRepository implements domain.UserRepository over sqlite.
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository builds the sqlite-backed account store.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role entity.Role) (*entity.User, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, email, passwordHash, string(role), now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("User", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM users WHERE email = ? AND deleted_at IS NULL`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("User", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return row.toEntity(), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM users WHERE id = ? AND deleted_at IS NULL`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("User", userID)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return row.toEntity(), nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM users WHERE deleted_at IS NULL
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]*entity.User, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Delete soft-deletes: the row stays for auditing but stops resolving.
func (r *userRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET deleted_at = ?, updated_at = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		time.Now(), time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("User", userID)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("User", userID)
	}
	return nil
}
