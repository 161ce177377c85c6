package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultReorderLevel applies when an item is created without one.
const DefaultReorderLevel = 5

// Stock transaction types.
const (
	TransactionIn         = "IN"
	TransactionOut        = "OUT"
	TransactionAdjustment = "ADJUSTMENT"
)

// Item is one inventory record. TotalValue is derived from Quantity and
// UnitPrice; it is recomputed on every mutation and never taken from input.
type Item struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	ReorderLevel int             `json:"reorder_level"`
	AddedBy      uuid.UUID       `json:"added_by"`
	AddedByName  string          `json:"added_by_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CalculateTotalValue recomputes TotalValue from Quantity and UnitPrice.
func (i *Item) CalculateTotalValue() {
	i.TotalValue = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// StockTransaction is an immutable record of one stock change.
type StockTransaction struct {
	ID              uuid.UUID `json:"id"`
	ItemID          uuid.UUID `json:"item_id"`
	Type            string    `json:"transaction_type"`
	QuantityChange  int       `json:"quantity_change"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	PerformedBy     uuid.UUID `json:"performed_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// ItemPage is one page of items.
type ItemPage struct {
	Content       []*Item `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int     `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

// TransactionPage is one page of stock transactions.
type TransactionPage struct {
	Content       []*StockTransaction `json:"content"`
	Page          int                 `json:"page"`
	Size          int                 `json:"size"`
	TotalElements int                 `json:"totalElements"`
	TotalPages    int                 `json:"totalPages"`
}
