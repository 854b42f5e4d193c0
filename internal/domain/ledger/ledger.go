// Package ledger derives the economics of a single sale: gross revenue,
// channel commission, tax, and net revenue.
//
// Sale economics follow a snapshot policy: they are computed once from the
// platform and store configuration current at sale time, stored on the sale
// record, and never recomputed from later configuration. Reporting derives
// everything from the sale's own stored fields.
package ledger

import (
	"github.com/shopspring/decimal"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
)

// Entry is the computed economics of one sale.
type Entry struct {
	Gross      types.Money
	Commission types.Money
	Tax        types.Money
	Net        types.Money
}

// SaleFacts are the raw sale fields the ledger computes from.
type SaleFacts struct {
	Quantity   int64
	UnitPrice  types.Money
	TotalValue types.Money
}

// Gross returns the sale's gross value: TotalValue when present and
// positive, otherwise UnitPrice * Quantity (fallback for legacy records).
func (f SaleFacts) Gross() types.Money {
	if f.TotalValue.IsPositive() {
		return f.TotalValue
	}
	return f.UnitPrice.Mul(decimal.NewFromInt(f.Quantity))
}

// For computes the full ledger entry for a sale against the given channel
// fees and store tax policy:
//
//	gross      = totalValue > 0 ? totalValue : unitPrice * quantity
//	commission = gross * commission% + fixedFee * quantity
//	tax        = paysTax ? gross * tax% : 0
//	net        = gross - commission - tax
//
// Pure: identical inputs always produce identical outputs.
func For(sale SaleFacts, fees platform.Fees, settings store.Settings) Entry {
	gross := sale.Gross()

	commission := types.PercentOf(gross, fees.CommissionPercentage).
		Add(fees.FixedFeePerItem.Mul(decimal.NewFromInt(sale.Quantity)))

	tax := types.Zero()
	if settings.PaysTax {
		tax = types.PercentOf(gross, settings.TaxPercentage)
	}

	return Entry{
		Gross:      gross,
		Commission: commission,
		Tax:        tax,
		Net:        gross.Sub(commission).Sub(tax),
	}
}

// Snapshot is the economics stored on a sale record at creation time.
type Snapshot struct {
	SaleFacts
	Commission types.Money
	Tax        types.Money
}

// FromSnapshot rebuilds the ledger entry from a sale's stored fields.
// Net is rederived as gross - commission - tax so the conservation
// invariant holds even for hand-edited rows.
func FromSnapshot(s Snapshot) Entry {
	gross := s.Gross()
	return Entry{
		Gross:      gross,
		Commission: s.Commission,
		Tax:        s.Tax,
		Net:        gross.Sub(s.Commission).Sub(s.Tax),
	}
}

// Add merges another entry into this one and returns the sum.
func (e Entry) Add(other Entry) Entry {
	return Entry{
		Gross:      e.Gross.Add(other.Gross),
		Commission: e.Commission.Add(other.Commission),
		Tax:        e.Tax.Add(other.Tax),
		Net:        e.Net.Add(other.Net),
	}
}
