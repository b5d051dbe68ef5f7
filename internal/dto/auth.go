package dto

import "github.com/ais-aviation/currency-service/internal/core/domain"

// RegisterRequest defines the payload for creating a password account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name"`
}

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyPasswordRequest checks a password against the stored hash. Used by
// the reservation backend, which must never see a hard failure here.
type VerifyPasswordRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID string `json:"userID"`
	OpenID string `json:"openId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		OpenID: u.OpenID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// AuthResponse is the common envelope for auth operations.
type AuthResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
	Message string        `json:"message,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
