package material

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLowStock(t *testing.T) {
	m := Material{
		Quantity:     decimal.RequireFromString("10"),
		MinimumStock: decimal.RequireFromString("10"),
	}
	assert.True(t, m.LowStock())

	m.Quantity = decimal.RequireFromString("10.01")
	assert.False(t, m.LowStock())

	m.Quantity = decimal.RequireFromString("3")
	assert.True(t, m.LowStock())
}

func TestStockValue(t *testing.T) {
	m := Material{
		Quantity:  decimal.RequireFromString("2.5"),
		UnitPrice: decimal.RequireFromString("19.99"),
	}
	assert.Equal(t, "49.98", m.StockValue().StringFixed(2))
}

func TestNextCategoryCode(t *testing.T) {
	assert.Equal(t, "CAT001", NextCategoryCode(1))
	assert.Equal(t, "CAT042", NextCategoryCode(42))
	assert.Equal(t, "CAT100", NextCategoryCode(100))
}
