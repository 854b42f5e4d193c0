// Package pricing computes product cost breakdowns and per-channel sale
// prices.
//
// All math runs at full decimal precision. Rounding to display precision
// happens at the serialization boundary, never here.
package pricing

import (
	"github.com/shopspring/decimal"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
)

// FilamentUsage is one line of a product's bill of materials.
type FilamentUsage struct {
	FilamentID   id.ID
	PricePerGram types.Money
	Grams        types.Grams
}

// CostInput describes everything a product consumes plus the desired margin.
type CostInput struct {
	Filaments        []FilamentUsage
	PrintingHours    types.Money
	EnergyCostPerKwh types.Money
	MarginPercent    types.Money
}

// Breakdown is the computed cost structure of a product.
type Breakdown struct {
	FilamentCost    types.Money
	EnergyCost      types.Money
	BaseCost        types.Money
	PriceWithMargin types.Money
}

// Validate checks the cost input ranges.
func (in CostInput) Validate() error {
	if in.PrintingHours.IsNegative() {
		return apperror.NewValidation("printing hours must not be negative").
			WithDetail("printingHours", in.PrintingHours.String())
	}
	if in.EnergyCostPerKwh.IsNegative() {
		return apperror.NewValidation("energy cost per kWh must not be negative").
			WithDetail("energyCostPerKwh", in.EnergyCostPerKwh.String())
	}
	if in.MarginPercent.IsNegative() {
		return apperror.NewValidation("profit margin must not be negative").
			WithDetail("marginPercent", in.MarginPercent.String())
	}
	for _, u := range in.Filaments {
		if u.Grams.IsNegative() {
			return apperror.NewValidation("filament usage must not be negative").
				WithDetail("filament_id", u.FilamentID.String())
		}
		if u.PricePerGram.IsNegative() {
			return apperror.NewValidation("filament price per gram must not be negative").
				WithDetail("filament_id", u.FilamentID.String())
		}
	}
	return nil
}

// ComputeBreakdown derives the cost structure of a product:
//
//	filamentCost = Σ pricePerGram_i * grams_i
//	energyCost   = printingHours * energyCostPerKwh
//	baseCost     = filamentCost + energyCost
//	withMargin   = baseCost * (1 + margin/100), then * (1 + tax/100) if the
//	               store pays tax on sales.
func ComputeBreakdown(in CostInput, settings store.Settings) Breakdown {
	filamentCost := types.Zero()
	for _, u := range in.Filaments {
		filamentCost = filamentCost.Add(u.PricePerGram.Mul(u.Grams.Money()))
	}

	energyCost := in.PrintingHours.Mul(in.EnergyCostPerKwh)
	baseCost := filamentCost.Add(energyCost)

	priceWithMargin := types.WithPercentAdded(baseCost, in.MarginPercent)
	if settings.PaysTax {
		priceWithMargin = types.WithPercentAdded(priceWithMargin, settings.TaxPercentage)
	}

	return Breakdown{
		FilamentCost:    filamentCost,
		EnergyCost:      energyCost,
		BaseCost:        baseCost,
		PriceWithMargin: priceWithMargin,
	}
}

// Channel couples a platform identity with its fee structure for price
// suggestions.
type Channel struct {
	ID   id.ID
	Name string
	Fees platform.Fees
}

// ChannelSuggestion is the suggested sale price on one channel.
type ChannelSuggestion struct {
	ChannelID id.ID
	Name      string
	Price     types.Money

	// Degenerate marks a commission >= 100% where the reverse-commission
	// formula is undefined and the additive fallback was applied.
	Degenerate bool
}

// SuggestChannelPrice reverses the channel's commission so the seller keeps
// basePrice after fees:
//
//	price = (basePrice + fixedFee) / (1 - commission/100)
//
// When commission >= 100% the denominator is not positive; the formula falls
// back to basePrice + fixedFee and the degenerate flag is set. Never divides
// by zero.
func SuggestChannelPrice(basePrice types.Money, fees platform.Fees) (types.Money, bool) {
	denominator := decimal.NewFromInt(1).Sub(fees.CommissionPercentage.Div(decimal.NewFromInt(100)))
	if denominator.IsPositive() {
		return basePrice.Add(fees.FixedFeePerItem).Div(denominator), false
	}
	return basePrice.Add(fees.FixedFeePerItem), true
}

// SuggestForChannels computes the suggested price on every channel,
// preserving input order.
func SuggestForChannels(basePrice types.Money, channels []Channel) []ChannelSuggestion {
	out := make([]ChannelSuggestion, 0, len(channels))
	for _, ch := range channels {
		price, degenerate := SuggestChannelPrice(basePrice, ch.Fees)
		out = append(out, ChannelSuggestion{
			ChannelID:  ch.ID,
			Name:       ch.Name,
			Price:      price,
			Degenerate: degenerate,
		})
	}
	return out
}

// RecommendedListPrice is the max over all channel suggestions, so the margin
// holds on every channel simultaneously. Returns zero for an empty list.
func RecommendedListPrice(suggestions []ChannelSuggestion) types.Money {
	max := types.Zero()
	for _, s := range suggestions {
		if s.Price.GreaterThan(max) {
			max = s.Price
		}
	}
	return max
}

// MarginReport is the profit implied by a user-chosen final price.
type MarginReport struct {
	PriceBeforeTax types.Money
	Profit         types.Money
	ProfitPercent  types.Money

	// ZeroCost marks a zero production cost where a percentage margin is
	// undefined; ProfitPercent is reported as zero.
	ZeroCost bool
}

// BackOutMargin derives the effective margin from a final sale price.
// If the store pays tax the tax share is stripped first.
func BackOutMargin(finalPrice, totalCost types.Money, settings store.Settings) MarginReport {
	priceBeforeTax := finalPrice
	if settings.PaysTax {
		priceBeforeTax = types.WithoutPercent(finalPrice, settings.TaxPercentage)
	}

	profit := priceBeforeTax.Sub(totalCost)

	report := MarginReport{
		PriceBeforeTax: priceBeforeTax,
		Profit:         profit,
	}
	if totalCost.IsPositive() {
		report.ProfitPercent = profit.Div(totalCost).Mul(decimal.NewFromInt(100))
	} else {
		report.ProfitPercent = types.Zero()
		report.ZeroCost = true
	}
	return report
}
