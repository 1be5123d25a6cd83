package domain

import (
	"context"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// ============ Repository interface ============

// UserRepository is the account store. All lookups exclude soft-deleted
// rows.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role entity.Role) (*entity.User, error)

	// GetByEmail resolves an account for login.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	GetByID(ctx context.Context, userID string) (*entity.User, error)

	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	Count(ctx context.Context) (int, error)

	// Delete soft-deletes the account.
	Delete(ctx context.Context, userID string) error

	UpdateLastLogin(ctx context.Context, userID string) error
}

// ============ Usecase interface ============

// UserUsecase is the account business logic.
type UserUsecase interface {
	// Register creates an account. Only admins may call it.
	Register(ctx context.Context, email, password string, role entity.Role) (*entity.User, error)

	// Login verifies credentials and returns the account.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	GetUser(ctx context.Context, userID string) (*entity.User, error)

	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error)

	DeleteUser(ctx context.Context, userID string) error
}
