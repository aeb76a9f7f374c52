package material

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is the fixed set of measurement units for materials.
type Unit string

const (
	UnitPiece    Unit = "piece"
	UnitKilogram Unit = "kg"
	UnitTon      Unit = "ton"
	UnitMeter    Unit = "m"
	UnitSquareM  Unit = "m2"
	UnitCubicM   Unit = "m3"
	UnitLiter    Unit = "l"
	UnitBag      Unit = "bag"
	UnitBox      Unit = "box"
	UnitRoll     Unit = "roll"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitKilogram, UnitTon, UnitMeter, UnitSquareM, UnitCubicM,
		UnitLiter, UnitBag, UnitBox, UnitRoll:
		return true
	}
	return false
}

type Material struct {
	ID           string
	Code         string
	Name         string
	Description  *string
	CategoryID   string
	Quantity     decimal.Decimal
	Unit         Unit
	UnitPrice    decimal.Decimal
	MinimumStock decimal.Decimal
	Location     *string
	SupplierID   *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	CategoryName *string
	SupplierName *string
}

// LowStock reports whether the on-hand quantity has fallen to or below the
// minimum stock threshold.
func (m Material) LowStock() bool {
	return m.Quantity.LessThanOrEqual(m.MinimumStock)
}

// StockValue is quantity times unit price, rounded to 2 decimal places.
func (m Material) StockValue() decimal.Decimal {
	return m.Quantity.Mul(m.UnitPrice).Round(2)
}
