package activity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for audit entries.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*Page, error)
	ListByAction(ctx context.Context, action string, page, size int) (*Page, error)
}
