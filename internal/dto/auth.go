package dto

import "time"

// LoginRequest carries HR user credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
}

// RegisterUserRequest carries a new HR user account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse is the API shape of an HR user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
