package inventory

import (
	"context"
	"errors"

	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/shopspring/decimal"
)

// Failure modes surfaced to the API boundary.
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPrice      = errors.New("unit price cannot be negative")
)

// Service defines inventory business logic. Mutating operations take the
// acting user resolved by the API boundary and record one audit entry each.
type Service interface {
	GetItems(ctx context.Context, page, size int) (*ItemPage, error)
	SearchItems(ctx context.Context, query string, page, size int) (*ItemPage, error)
	GetItemsByCategory(ctx context.Context, categoryID string, page, size int) (*ItemPage, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	LowStockItems(ctx context.Context) ([]*Item, error)
	ItemTransactions(ctx context.Context, itemID string, page, size int) (*TransactionPage, error)

	CreateItem(ctx context.Context, req CreateItemRequest, actor *user.User, clientIP string) (*Item, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest, actor *user.User, clientIP string) (*Item, error)
	DeleteItem(ctx context.Context, id string, actor *user.User, clientIP string) error
	AddStock(ctx context.Context, id string, quantity int, reference, notes string, actor *user.User, clientIP string) error
	ReduceStock(ctx context.Context, id string, quantity int, reference, notes string, actor *user.User, clientIP string) error
}

// CreateItemRequest holds the data for creating an item.
type CreateItemRequest struct {
	Name         string          `json:"name" validate:"required,max=150"`
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Description  string          `json:"description"`
	Location     string          `json:"location" validate:"max=100"`
	SKU          string          `json:"sku" validate:"max=50"`
	ReorderLevel *int            `json:"reorder_level" validate:"omitempty,gte=0"`
}

// UpdateItemRequest holds the updatable item fields. Quantity is absent on
// purpose: it only changes through the stock operations.
type UpdateItemRequest struct {
	Name         string          `json:"name" validate:"required,max=150"`
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
	Description  string          `json:"description"`
	Location     string          `json:"location" validate:"max=100"`
	SKU          string          `json:"sku" validate:"max=50"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
}
