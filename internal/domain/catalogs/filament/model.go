// Package filament defines filament spools, their purchase-derived unit
// price, and stock-level analytics.
package filament

import (
	"context"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

// LowStockThreshold is the fixed reorder cutoff in grams.
const LowStockThreshold = types.Grams(200 * types.GramsScale)

// Filament is a spool of printing material tracked by weight.
type Filament struct {
	entity.BaseEntity

	Name     string `db:"name" json:"name"`
	Material string `db:"material" json:"material"`
	Color    string `db:"color" json:"color"`

	// PricePerGram is derived at purchase time as totalValue / grams,
	// kept at 4 decimal places.
	PricePerGram types.Money `db:"price_per_gram" json:"pricePerGram"`

	// CurrentStock is the remaining weight in grams.
	CurrentStock types.Grams `db:"current_stock" json:"currentStock"`

	// TotalValue is the monetary value of the remaining stock.
	TotalValue types.Money `db:"total_value" json:"totalValue"`
}

// New registers a filament purchase: grams of material bought for totalValue.
// The per-gram price is derived from the purchase and kept at 4 decimals.
func New(storeID id.ID, name, material, color string, grams types.Grams, totalValue types.Money) (*Filament, error) {
	pricePerGram, err := PricePerGram(totalValue, grams)
	if err != nil {
		return nil, err
	}
	return &Filament{
		BaseEntity:   entity.NewBaseEntity(storeID),
		Name:         name,
		Material:     material,
		Color:        color,
		PricePerGram: pricePerGram,
		CurrentStock: grams,
		TotalValue:   totalValue,
	}, nil
}

// PricePerGram derives the unit price of a purchase, rounded to 4 decimal
// places. Zero or negative weight is a validation error, never a division
// by zero.
func PricePerGram(totalValue types.Money, grams types.Grams) (types.Money, error) {
	if !grams.IsPositive() {
		return types.Zero(), apperror.NewValidation("purchase weight must be positive").
			WithDetail("grams", grams.String())
	}
	if totalValue.IsNegative() {
		return types.Zero(), apperror.NewValidation("purchase value must not be negative").
			WithDetail("totalValue", totalValue.String())
	}
	return totalValue.Div(grams.Money()).Round(4), nil
}

// AddPurchase merges a new purchase into the spool: stock and value grow,
// and the per-gram price is rederived from the combined value.
func (f *Filament) AddPurchase(grams types.Grams, totalValue types.Money) error {
	if !grams.IsPositive() {
		return apperror.NewValidation("purchase weight must be positive").
			WithDetail("grams", grams.String())
	}
	if totalValue.IsNegative() {
		return apperror.NewValidation("purchase value must not be negative").
			WithDetail("totalValue", totalValue.String())
	}

	f.CurrentStock = f.CurrentStock.Add(grams)
	f.TotalValue = f.TotalValue.Add(totalValue)

	pricePerGram, err := PricePerGram(f.TotalValue, f.CurrentStock)
	if err != nil {
		return err
	}
	f.PricePerGram = pricePerGram
	f.Touch()
	return nil
}

// Consume deducts grams from stock and reduces the stock value at the
// current per-gram price.
func (f *Filament) Consume(grams types.Grams) error {
	if grams.IsNegative() {
		return apperror.NewValidation("consumption must not be negative").
			WithDetail("grams", grams.String())
	}
	if grams > f.CurrentStock {
		return apperror.NewInsufficientStock(f.ID.String(), grams.String(), f.CurrentStock.String())
	}

	f.CurrentStock = f.CurrentStock.Sub(grams)
	f.TotalValue = f.TotalValue.Sub(f.PricePerGram.Mul(grams.Money()))
	if f.TotalValue.IsNegative() {
		f.TotalValue = types.Zero()
	}
	f.Touch()
	return nil
}

// IsLowStock reports whether the spool is at or below the reorder cutoff.
func (f *Filament) IsLowStock() bool {
	return f.CurrentStock <= LowStockThreshold
}

// Validate checks entity invariants.
func (f *Filament) Validate(_ context.Context) error {
	if f.Name == "" {
		return apperror.NewValidation("filament name is required")
	}
	if f.PricePerGram.IsNegative() {
		return apperror.NewValidation("price per gram must not be negative")
	}
	if f.CurrentStock.IsNegative() {
		return apperror.NewValidation("current stock must not be negative")
	}
	return nil
}
