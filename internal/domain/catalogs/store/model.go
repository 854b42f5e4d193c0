// Package store defines the seller account and its financial settings.
package store

import (
	"context"
	"time"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

// Store is one seller account. It is the tenancy boundary: every catalog
// and sale record carries its store ID.
type Store struct {
	ID          id.ID  `db:"id" json:"id"`
	OwnerUserID id.ID  `db:"owner_user_id" json:"ownerUserId"`
	Name        string `db:"name" json:"name"`

	// Financial configuration
	PaysTax          bool        `db:"pays_tax" json:"paysTax"`
	TaxPercentage    types.Money `db:"tax_percentage" json:"taxPercentage"`
	EnergyCostPerKwh types.Money `db:"energy_cost_per_kwh" json:"energyCostPerKwh"`

	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Settings is the fully-defaulted financial configuration handed to the
// computation engines. It is normalized once at the repository boundary so
// downstream code never re-checks optional fields.
type Settings struct {
	PaysTax          bool
	TaxPercentage    types.Money
	EnergyCostPerKwh types.Money
}

// Settings extracts the normalized financial configuration.
// Negative values coming from legacy rows are clamped to zero.
func (s *Store) Settings() Settings {
	out := Settings{
		PaysTax:          s.PaysTax,
		TaxPercentage:    s.TaxPercentage,
		EnergyCostPerKwh: s.EnergyCostPerKwh,
	}
	if out.TaxPercentage.IsNegative() {
		out.TaxPercentage = types.Zero()
	}
	if out.EnergyCostPerKwh.IsNegative() {
		out.EnergyCostPerKwh = types.Zero()
	}
	return out
}

// New creates a Store with generated ID and timestamps.
func New(ownerUserID id.ID, name string) *Store {
	now := time.Now().UTC()
	return &Store{
		ID:          id.New(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch updates the UpdatedAt timestamp. The version is advanced by the
// repository on successful update.
func (s *Store) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// SetVersion updates the version number (used by repository after sync).
func (s *Store) SetVersion(v int) {
	s.Version = v
}

// Validate checks entity invariants.
func (s *Store) Validate(_ context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("store name is required")
	}
	return s.Settings().Validate()
}

// Validate checks the financial configuration ranges.
func (s Settings) Validate() error {
	if s.TaxPercentage.IsNegative() || s.TaxPercentage.GreaterThanOrEqual(types.NewMoney(100)) {
		return apperror.NewValidation("tax percentage must be in [0, 100)").
			WithDetail("taxPercentage", s.TaxPercentage.String())
	}
	if s.EnergyCostPerKwh.IsNegative() {
		return apperror.NewValidation("energy cost per kWh must not be negative").
			WithDetail("energyCostPerKwh", s.EnergyCostPerKwh.String())
	}
	return nil
}
