package usecase

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// In-memory UserRepository for usecase tests.
type testUserRepository struct {
	users map[string]*entity.User
}

func newTestUserRepository() *testUserRepository {
	return &testUserRepository{
		users: make(map[string]*entity.User),
	}
}

func (r *testUserRepository) Create(ctx context.Context, email, passwordHash string, role entity.Role) (*entity.User, error) {
	user := &entity.User{
		ID:           "test-user-id",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[email] = user
	return user, nil
}

func (r *testUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, domain.NewNotFoundError("User", email)
}

func (r *testUserRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	return &entity.User{ID: userID, Email: "test@sgp.local", Role: entity.RoleOperator}, nil
}

func (r *testUserRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	return []*entity.User{}, nil
}

func (r *testUserRepository) Count(ctx context.Context) (int, error) {
	return 0, nil
}

func (r *testUserRepository) Delete(ctx context.Context, userID string) error {
	return nil
}

func (r *testUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	return nil
}

func TestRegister(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tests := []struct {
		name        string
		email       string
		password    string
		role        entity.Role
		setupRepo   func(*testUserRepository)
		wantErr     bool
		errContains string
	}{
		{
			name:     "valid registration",
			email:    "ana@sgp.local",
			password: "password123",
			role:     entity.RoleOperator,
			wantErr:  false,
		},
		{
			name:     "email already registered",
			email:    "taken@sgp.local",
			password: "password123",
			role:     entity.RoleOperator,
			setupRepo: func(r *testUserRepository) {
				r.users["taken@sgp.local"] = &entity.User{ID: "existing-id", Email: "taken@sgp.local"}
			},
			wantErr:     true,
			errContains: "already exists",
		},
		{
			name:        "malformed email",
			email:       "not-an-email",
			password:    "password123",
			role:        entity.RoleOperator,
			wantErr:     true,
			errContains: "invalid email",
		},
		{
			name:        "password too short",
			email:       "ana@sgp.local",
			password:    "12345",
			role:        entity.RoleOperator,
			wantErr:     true,
			errContains: "at least 6 characters",
		},
		{
			name:        "password too long",
			email:       "ana@sgp.local",
			password:    strings.Repeat("a", 73),
			role:        entity.RoleOperator,
			wantErr:     true,
			errContains: "too long",
		},
		{
			name:        "unknown role",
			email:       "ana@sgp.local",
			password:    "password123",
			role:        entity.Role("SUPERUSER"),
			wantErr:     true,
			errContains: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			uc := NewUserUsecase(repo, logger)
			user, err := uc.Register(context.Background(), tt.email, tt.password, tt.role)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatalf("expected a user, got nil")
			}
			if user.Role != tt.role {
				t.Errorf("role = %v, want %v", user.Role, tt.role)
			}
			if user.PasswordHash == tt.password {
				t.Errorf("password stored in clear")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	testPasswordHash, _ := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		email       string
		password    string
		setupRepo   func(*testUserRepository)
		wantErr     bool
		errContains string
	}{
		{
			name:     "valid credentials",
			email:    "ana@sgp.local",
			password: "correctpassword",
			setupRepo: func(r *testUserRepository) {
				r.users["ana@sgp.local"] = &entity.User{
					ID:           "test-id",
					Email:        "ana@sgp.local",
					PasswordHash: string(testPasswordHash),
					Role:         entity.RoleAdmin,
				}
			},
			wantErr: false,
		},
		{
			name:        "unknown account",
			email:       "nobody@sgp.local",
			password:    "password123",
			wantErr:     true,
			errContains: "invalid email or password",
		},
		{
			name:     "wrong password",
			email:    "ana@sgp.local",
			password: "wrongpassword",
			setupRepo: func(r *testUserRepository) {
				r.users["ana@sgp.local"] = &entity.User{
					ID:           "test-id",
					Email:        "ana@sgp.local",
					PasswordHash: string(testPasswordHash),
				}
			},
			wantErr: true,
			// same message as the unknown account: no account probing
			errContains: "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestUserRepository()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			uc := NewUserUsecase(repo, logger)
			user, err := uc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatalf("expected a user, got nil")
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Run("hash is not the password", func(t *testing.T) {
		hash, err := hashPassword("securePassword123")
		if err != nil {
			t.Fatalf("hashPassword: %v", err)
		}
		if hash == "securePassword123" {
			t.Error("hash equals the cleartext password")
		}
		if len(hash) < 50 {
			t.Error("bcrypt hash unexpectedly short")
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		hash1, _ := hashPassword("testPassword")
		hash2, _ := hashPassword("testPassword")
		if hash1 == hash2 {
			t.Error("expected distinct salts to produce distinct hashes")
		}
	})

	t.Run("verification", func(t *testing.T) {
		hash, _ := hashPassword("correctPassword")
		if err := verifyPassword(hash, "correctPassword"); err != nil {
			t.Error("correct password rejected")
		}
		if err := verifyPassword(hash, "wrongPassword"); err == nil {
			t.Error("wrong password accepted")
		}
	})
}
