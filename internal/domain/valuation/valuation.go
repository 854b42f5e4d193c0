// Package valuation sums the monetary value of a store's inventory.
package valuation

import (
	"github.com/shopspring/decimal"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/stock"
)

// Value is the inventory worth of a store, split by kind. Full precision;
// rounding happens at the serialization boundary.
type Value struct {
	FilamentStock types.Money
	GenericStock  types.Money
	Inventory     types.Money
}

// Total is the combined inventory worth.
func (v Value) Total() types.Money {
	return v.FilamentStock.Add(v.GenericStock).Add(v.Inventory)
}

// Valuate sums inventory value across filament spools, generic stock items,
// and purchased assets. Pure summation over the supplied snapshots.
func Valuate(filaments []filament.Filament, items []stock.Item, assets []stock.InventoryAsset) Value {
	var v Value
	v.FilamentStock = types.Zero()
	v.GenericStock = types.Zero()
	v.Inventory = types.Zero()

	for _, f := range filaments {
		v.FilamentStock = v.FilamentStock.Add(f.TotalValue)
	}
	for _, it := range items {
		v.GenericStock = v.GenericStock.Add(it.TotalValue)
	}
	for _, a := range assets {
		v.Inventory = v.Inventory.Add(a.PaidValue.Mul(decimal.NewFromInt(a.Quantity)))
	}
	return v
}
