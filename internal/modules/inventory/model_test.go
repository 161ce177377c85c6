package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalValue(t *testing.T) {
	item := &Item{Quantity: 3, UnitPrice: decimal.NewFromFloat(1.99)}
	item.CalculateTotalValue()
	assert.True(t, item.TotalValue.Equal(decimal.NewFromFloat(5.97)))

	item.Quantity = 0
	item.CalculateTotalValue()
	assert.True(t, item.TotalValue.IsZero())
}

func TestIsLowStock(t *testing.T) {
	item := &Item{Quantity: 5, ReorderLevel: 5}
	assert.True(t, item.IsLowStock())

	item.Quantity = 6
	assert.False(t, item.IsLowStock())
}
