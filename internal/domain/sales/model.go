// Package sales defines sale records and their snapshot economics.
package sales

import (
	"context"
	"time"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/ledger"
)

// Sale is an immutable historical fact: something sold on a channel on a
// date. Commission, tax, and net are computed once at creation from the
// platform and store configuration current at the time and stored here;
// reporting never recomputes them from later configuration.
type Sale struct {
	entity.BaseEntity

	ProductID  id.ID `db:"product_id" json:"productId"`
	PlatformID id.ID `db:"platform_id" json:"platformId"`

	Quantity   int64       `db:"quantity" json:"quantity"`
	UnitPrice  types.Money `db:"unit_price" json:"unitPrice"`
	TotalValue types.Money `db:"total_value" json:"totalValue"`
	SaleDate   time.Time   `db:"sale_date" json:"saleDate"`

	// Snapshot economics, fixed at creation
	CommissionValue types.Money `db:"commission_value" json:"commissionValue"`
	TaxValue        types.Money `db:"tax_value" json:"taxValue"`
	NetValue        types.Money `db:"net_value" json:"netValue"`
}

// Facts extracts the raw fields the ledger computes from.
func (s *Sale) Facts() ledger.SaleFacts {
	return ledger.SaleFacts{
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		TotalValue: s.TotalValue,
	}
}

// Snapshot extracts the stored economics for report-time derivation.
func (s *Sale) Snapshot() ledger.Snapshot {
	return ledger.Snapshot{
		SaleFacts:  s.Facts(),
		Commission: s.CommissionValue,
		Tax:        s.TaxValue,
	}
}

// ApplyEntry stores a computed ledger entry on the record.
func (s *Sale) ApplyEntry(e ledger.Entry) {
	s.TotalValue = e.Gross
	s.CommissionValue = e.Commission
	s.TaxValue = e.Tax
	s.NetValue = e.Net
}

// Validate checks entity invariants.
func (s *Sale) Validate(_ context.Context) error {
	if s.Quantity < 1 {
		return apperror.NewValidation("sale quantity must be at least 1").
			WithDetail("quantity", s.Quantity)
	}
	if s.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price must not be negative")
	}
	if id.IsNil(s.ProductID) {
		return apperror.NewValidation("product is required")
	}
	if id.IsNil(s.PlatformID) {
		return apperror.NewValidation("platform is required")
	}
	if s.SaleDate.IsZero() {
		return apperror.NewValidation("sale date is required")
	}
	return nil
}
