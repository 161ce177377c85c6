package activity

import (
	"context"

	"github.com/google/uuid"
)

// Service defines audit-log business logic. Record is write-only; the list
// operations exist for audit review and nothing else depends on them.
type Service interface {
	Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, description, ipAddress string) error
	ListByUser(ctx context.Context, userID string, page, size int) (*Page, error)
	ListByAction(ctx context.Context, action string, page, size int) (*Page, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, description, ipAddress string) error {
	return s.repo.Create(ctx, &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		IPAddress:   ipAddress,
	})
}

func (s *service) ListByUser(ctx context.Context, userID string, page, size int) (*Page, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	page, size = normalizePage(page, size)
	return s.repo.ListByUser(ctx, uid, page, size)
}

func (s *service) ListByAction(ctx context.Context, action string, page, size int) (*Page, error) {
	page, size = normalizePage(page, size)
	return s.repo.ListByAction(ctx, action, page, size)
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return page, size
}
