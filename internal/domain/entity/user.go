package entity

import "time"

// Role is the access level of an account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// User is an operator account. Deletion is soft: deleted users keep
// their row but stop resolving through the repositories.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	LastLoginAt  *time.Time
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsAdmin reports whether the account may manage users and configs.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
