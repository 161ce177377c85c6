package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a user.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User represents an account that can authenticate and act on the inventory.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
