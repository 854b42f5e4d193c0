// Package product defines printed products and their bill of materials.
package product

import (
	"context"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

// Product is a printable item with a stored cost breakdown. The breakdown
// fields are recomputed from the bill of materials on every create/update.
type Product struct {
	entity.BaseEntity

	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	PrintingHours          types.Money `db:"printing_hours" json:"printingHours"`
	ProfitMarginPercentage types.Money `db:"profit_margin_percentage" json:"profitMarginPercentage"`

	// Stored cost breakdown (full precision)
	FilamentCost    types.Money `db:"filament_cost" json:"filamentCost"`
	EnergyCost      types.Money `db:"energy_cost" json:"energyCost"`
	BaseCost        types.Money `db:"base_cost" json:"baseCost"`
	PriceWithMargin types.Money `db:"price_with_margin" json:"priceWithMargin"`

	// FinalPrice is the user-chosen list price, which may deviate from the
	// recommendation.
	FinalPrice types.Money `db:"final_price" json:"finalPrice"`
}

// FilamentLink is one bill-of-materials line: grams of a filament consumed
// per printed unit.
type FilamentLink struct {
	ProductID  id.ID       `db:"product_id" json:"productId"`
	FilamentID id.ID       `db:"filament_id" json:"filamentId"`
	Grams      types.Grams `db:"grams_used" json:"gramsUsed"`
}

// New creates a Product with generated ID and timestamps.
func New(storeID id.ID, name string) *Product {
	return &Product{
		BaseEntity: entity.NewBaseEntity(storeID),
		Name:       name,
	}
}

// Validate checks entity invariants.
func (p *Product) Validate(_ context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("product name is required")
	}
	if p.PrintingHours.IsNegative() {
		return apperror.NewValidation("printing hours must not be negative")
	}
	if p.ProfitMarginPercentage.IsNegative() {
		return apperror.NewValidation("profit margin must not be negative")
	}
	if p.FinalPrice.IsNegative() {
		return apperror.NewValidation("final price must not be negative")
	}
	return nil
}
