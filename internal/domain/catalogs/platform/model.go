// Package platform defines sales channels (marketplaces) and their fee
// structure.
package platform

import (
	"context"
	"time"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

// Platform is a sales channel. Platforms are global: every store sells
// through the same set of marketplaces.
type Platform struct {
	ID   id.ID  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	CommissionPercentage types.Money `db:"commission_percentage" json:"commissionPercentage"`
	FixedFeePerItem      types.Money `db:"fixed_fee_per_item" json:"fixedFeePerItem"`

	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Fees is the normalized fee structure consumed by the pricing and ledger
// engines.
type Fees struct {
	CommissionPercentage types.Money
	FixedFeePerItem      types.Money
}

// Fees extracts the normalized fee structure. Negative legacy values are
// clamped to zero.
func (p *Platform) Fees() Fees {
	f := Fees{
		CommissionPercentage: p.CommissionPercentage,
		FixedFeePerItem:      p.FixedFeePerItem,
	}
	if f.CommissionPercentage.IsNegative() {
		f.CommissionPercentage = types.Zero()
	}
	if f.FixedFeePerItem.IsNegative() {
		f.FixedFeePerItem = types.Zero()
	}
	return f
}

// New creates a Platform with generated ID and timestamps.
func New(name string, commission, fixedFee types.Money) *Platform {
	now := time.Now().UTC()
	return &Platform{
		ID:                   id.New(),
		Name:                 name,
		CommissionPercentage: commission,
		FixedFeePerItem:      fixedFee,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Touch updates the UpdatedAt timestamp. The version is advanced by the
// repository on successful update.
func (p *Platform) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// SetVersion updates the version number (used by repository after sync).
func (p *Platform) SetVersion(v int) {
	p.Version = v
}

// Validate checks entity invariants. Commission of exactly 100% is allowed
// to exist as data; the pricing engine resolves it via an explicit fallback.
func (p *Platform) Validate(_ context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("platform name is required")
	}
	if p.CommissionPercentage.IsNegative() || p.CommissionPercentage.GreaterThan(types.NewMoney(100)) {
		return apperror.NewValidation("commission percentage must be in [0, 100]").
			WithDetail("commissionPercentage", p.CommissionPercentage.String())
	}
	if p.FixedFeePerItem.IsNegative() {
		return apperror.NewValidation("fixed fee per item must not be negative").
			WithDetail("fixedFeePerItem", p.FixedFeePerItem.String())
	}
	return nil
}
