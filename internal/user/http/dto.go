package http

import (
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/pkg/request"
	"github.com/tidegrove/facility-booking-backend/internal/user"
)

type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	DisplayName   *string    `json:"display_name"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	IsActive      bool       `json:"is_active"`
	IsSystemAdmin bool       `json:"is_system_admin"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   u.LastLoginAt,
		IsActive:      u.IsActive,
		IsSystemAdmin: u.IsSystemAdmin,
	}
}

// UserTag is the minimal user reference embedded in other responses.
type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type ListUsersRequest struct {
	request.ListParams
	Email    string `form:"email"`
	IsActive *bool  `form:"is_active"`
}

type UpdateUserRequest struct {
	DisplayName   *string `json:"display_name"`
	IsActive      *bool   `json:"is_active"`
	IsSystemAdmin *bool   `json:"is_system_admin"`
}
