package activity

import (
	"time"

	"github.com/google/uuid"
)

// Action tags recorded for mutating inventory operations.
const (
	ActionItemCreated  = "ITEM_CREATED"
	ActionItemUpdated  = "ITEM_UPDATED"
	ActionItemDeleted  = "ITEM_DELETED"
	ActionStockAdded   = "STOCK_ADDED"
	ActionStockReduced = "STOCK_REDUCED"
)

// Entry is one immutable audit record of a mutating action.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type,omitempty"`
	EntityID    uuid.UUID `json:"entity_id"`
	Description string    `json:"description,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Page is one page of audit entries.
type Page struct {
	Content       []*Entry `json:"content"`
	Page          int      `json:"page"`
	Size          int      `json:"size"`
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
}
