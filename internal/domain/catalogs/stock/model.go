// Package stock defines generic stock items and purchased inventory assets
// (tools, printers, spare parts) valued by the stock-valuation report.
package stock

import (
	"context"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

// Item is a generic stock line (packaging, glue, inserts) valued at its
// stored total.
type Item struct {
	entity.BaseEntity

	Name       string      `db:"name" json:"name"`
	Quantity   int64       `db:"quantity" json:"quantity"`
	TotalValue types.Money `db:"total_value" json:"totalValue"`
}

// InventoryAsset is a purchased asset valued as paidValue * quantity.
type InventoryAsset struct {
	entity.BaseEntity

	Name      string      `db:"name" json:"name"`
	Quantity  int64       `db:"quantity" json:"quantity"`
	PaidValue types.Money `db:"paid_value" json:"paidValue"`
}

// NewItem creates a generic stock line.
func NewItem(storeID id.ID, name string, quantity int64, totalValue types.Money) *Item {
	return &Item{
		BaseEntity: entity.NewBaseEntity(storeID),
		Name:       name,
		Quantity:   quantity,
		TotalValue: totalValue,
	}
}

// NewAsset creates a purchased inventory asset.
func NewAsset(storeID id.ID, name string, quantity int64, paidValue types.Money) *InventoryAsset {
	return &InventoryAsset{
		BaseEntity: entity.NewBaseEntity(storeID),
		Name:       name,
		Quantity:   quantity,
		PaidValue:  paidValue,
	}
}

// Validate checks entity invariants.
func (i *Item) Validate(_ context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("stock item name is required")
	}
	if i.Quantity < 0 {
		return apperror.NewValidation("stock quantity must not be negative")
	}
	if i.TotalValue.IsNegative() {
		return apperror.NewValidation("stock value must not be negative")
	}
	return nil
}

// Validate checks entity invariants.
func (a *InventoryAsset) Validate(_ context.Context) error {
	if a.Name == "" {
		return apperror.NewValidation("inventory asset name is required")
	}
	if a.Quantity < 0 {
		return apperror.NewValidation("inventory quantity must not be negative")
	}
	if a.PaidValue.IsNegative() {
		return apperror.NewValidation("paid value must not be negative")
	}
	return nil
}
