package dto

import (
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// RegisterRequest is the account-creation request body (HTTP).
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"` // bcrypt caps input at 72 bytes
	Role     string `json:"role"`
}

// LoginRequest is the login request body (HTTP).
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token plus the identity the client
// caches locally.
type LoginResponse struct {
	Token  string `json:"token"`
	Expire string `json:"expire"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserResponse is the account representation (HTTP).
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// UserListResponse is the paginated account list (HTTP).
type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ToUserResponse converts entity.User to UserResponse DTO
func ToUserResponse(user *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}

	if user.LastLoginAt != nil {
		lastLogin := user.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &lastLogin
	}

	return resp
}

// ToUserListResponse converts a slice of entity.User to UserListResponse DTO
func ToUserListResponse(users []*entity.User, total, page, pageSize int) *UserListResponse {
	userResponses := make([]*UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(user)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &UserListResponse{
		Users:      userResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
