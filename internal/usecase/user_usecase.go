package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// userUsecase implements domain.UserUsecase.
type userUsecase struct {
	userRepo domain.UserRepository
	logger   *slog.Logger
}

// NewUserUsecase builds the account business logic.
func NewUserUsecase(
	userRepo domain.UserRepository,
	logger *slog.Logger,
) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates an account after validating email, password and role.
func (u *userUsecase) Register(ctx context.Context, email, password string, role entity.Role) (*entity.User, error) {
	if err := u.validateRegisterRequest(email, password, role); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.NewAlreadyExistsError("User", email)
	}
	if err != nil && !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.userRepo.Create(ctx, email, passwordHash, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Info("user registered", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

// Login verifies credentials. Invalid email and invalid password return
// the same error so callers cannot probe for accounts.
func (u *userUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewInvalidInputError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := verifyPassword(user.PasswordHash, password); err != nil {
		return nil, domain.NewInvalidInputError("invalid email or password")
	}

	// Last-login bookkeeping runs off the login path.
	go func() {
		if err := u.userRepo.UpdateLastLogin(context.Background(), user.ID); err != nil {
			u.logger.Error("failed to update last login", "error", err, "user_id", user.ID)
		}
	}()

	u.logger.Info("user logged in", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// ListUsers pages through accounts and returns the total count.
func (u *userUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	users, err := u.userRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	u.logger.Info("user deleted", "user_id", userID)
	return nil
}

// ============ helpers ============

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (u *userUsecase) validateRegisterRequest(email, password string, role entity.Role) error {
	if !emailRegex.MatchString(email) || len(email) > 254 {
		return domain.NewInvalidInputError("invalid email address")
	}
	if len(password) < 6 {
		return domain.NewInvalidInputError("password must be at least 6 characters")
	}
	if len(password) > 72 {
		return domain.NewInvalidInputError("password too long (max 72 characters)")
	}
	if !role.Valid() {
		return domain.NewInvalidInputError("role must be ADMIN or OPERATOR")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
