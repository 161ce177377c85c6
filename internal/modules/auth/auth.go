package auth

import (
	"context"
	"errors"
)

// Auth failure modes surfaced to the API boundary.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Claims carries the identity embedded in a session token.
type Claims struct {
	UserID   string
	Username string
	Role     string
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Validate(token string) (*Claims, error)
}
