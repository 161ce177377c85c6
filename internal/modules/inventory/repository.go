package inventory

import (
	"context"

	"github.com/autandojam/inventory-backend/internal/modules/activity"
	"github.com/google/uuid"
)

// Repository defines persistence operations for items. AdjustStock must apply
// the quantity change, the stock transaction and the audit entry as one unit:
// concurrent adjustments against the same item are serialized by the storage
// layer so the ledger quantity never diverges from the transaction history.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, size int) (*ItemPage, error)
	SearchByName(ctx context.Context, query string, page, size int) (*ItemPage, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (*ItemPage, error)
	LowStock(ctx context.Context) ([]*Item, error)
	AdjustStock(ctx context.Context, itemID uuid.UUID, delta int, txn *StockTransaction, entry *activity.Entry) (*Item, error)
}

// TransactionRepository reads the append-only stock transaction log.
type TransactionRepository interface {
	ListByItem(ctx context.Context, itemID uuid.UUID, page, size int) (*TransactionPage, error)
}
