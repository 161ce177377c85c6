package user

import (
	"context"
	"errors"
)

// Registration failure modes surfaced to the API boundary.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, username, email, password, fullName string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ValidatePassword(rawPassword, passwordHash string) bool
}
