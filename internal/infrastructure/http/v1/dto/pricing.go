package dto

import (
	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/product"
)

// PricingPreviewRequest prices a product configuration without saving it.
// Powers the product form.
type PricingPreviewRequest struct {
	Filaments     []FilamentUsageRequest `json:"filaments" binding:"required"`
	PrintingHours float64                `json:"printingHours"`
	MarginPercent float64                `json:"marginPercent"`

	// FinalPrice is the user-chosen list price; zero or absent means "use
	// the recommended price".
	FinalPrice float64 `json:"finalPrice"`

	// ChannelIDs restricts suggestions to specific platforms; empty means
	// all platforms.
	ChannelIDs []string `json:"channelIds"`
}

// FilamentUsageRequest is one bill-of-materials line.
type FilamentUsageRequest struct {
	FilamentID string  `json:"filamentId" binding:"required,uuid"`
	Grams      float64 `json:"grams" binding:"required"`
}

// ToSaveInput converts the preview request to the product service input.
func (r *PricingPreviewRequest) ToSaveInput(storeID id.ID) (product.SaveInput, error) {
	in := product.SaveInput{
		StoreID:       storeID,
		PrintingHours: types.NewMoney(r.PrintingHours),
		MarginPercent: types.NewMoney(r.MarginPercent),
		FinalPrice:    types.NewMoney(r.FinalPrice),
		Links:         make([]product.LinkInput, 0, len(r.Filaments)),
		ChannelIDs:    make([]id.ID, 0, len(r.ChannelIDs)),
	}

	for _, usage := range r.Filaments {
		filamentID, err := id.Parse(usage.FilamentID)
		if err != nil {
			return in, apperror.NewValidation("invalid filament id").WithDetail("filamentId", usage.FilamentID)
		}
		in.Links = append(in.Links, product.LinkInput{
			FilamentID: filamentID,
			Grams:      types.NewGramsFromFloat64(usage.Grams),
		})
	}

	for _, raw := range r.ChannelIDs {
		channelID, err := id.Parse(raw)
		if err != nil {
			return in, apperror.NewValidation("invalid channel id").WithDetail("channelId", raw)
		}
		in.ChannelIDs = append(in.ChannelIDs, channelID)
	}

	return in, nil
}

// PricingPreviewResponse is the computed quote.
type PricingPreviewResponse struct {
	Breakdown        BreakdownResponse           `json:"breakdown"`
	Channels         []ChannelSuggestionResponse `json:"channels"`
	RecommendedPrice float64                     `json:"recommendedPrice"`
	Margin           MarginResponse              `json:"margin"`
}

// BreakdownResponse is the cost structure of the configuration.
type BreakdownResponse struct {
	FilamentCost    float64 `json:"filamentCost"`
	EnergyCost      float64 `json:"energyCost"`
	BaseCost        float64 `json:"baseCost"`
	PriceWithMargin float64 `json:"priceWithMargin"`
}

// ChannelSuggestionResponse is the suggested price on one channel.
type ChannelSuggestionResponse struct {
	ChannelID string  `json:"channelId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`

	// Degenerate marks a commission >= 100% where the additive fallback
	// price was applied.
	Degenerate bool `json:"degenerate,omitempty"`
}

// MarginResponse is the profit implied by the final price.
type MarginResponse struct {
	PriceBeforeTax float64 `json:"priceBeforeTax"`
	Profit         float64 `json:"profit"`
	ProfitPercent  float64 `json:"profitPercent"`
	ZeroCost       bool    `json:"zeroCost,omitempty"`
}

// FromQuote builds the preview response, rounding at this boundary.
func FromQuote(q *product.Quote) *PricingPreviewResponse {
	resp := &PricingPreviewResponse{
		Breakdown: BreakdownResponse{
			FilamentCost:    types.Round2Float(q.Breakdown.FilamentCost),
			EnergyCost:      types.Round2Float(q.Breakdown.EnergyCost),
			BaseCost:        types.Round2Float(q.Breakdown.BaseCost),
			PriceWithMargin: types.Round2Float(q.Breakdown.PriceWithMargin),
		},
		Channels:         make([]ChannelSuggestionResponse, 0, len(q.Channels)),
		RecommendedPrice: types.Round2Float(q.RecommendedPrice),
		Margin: MarginResponse{
			PriceBeforeTax: types.Round2Float(q.Margin.PriceBeforeTax),
			Profit:         types.Round2Float(q.Margin.Profit),
			ProfitPercent:  types.Round2Float(q.Margin.ProfitPercent),
			ZeroCost:       q.Margin.ZeroCost,
		},
	}

	for _, ch := range q.Channels {
		resp.Channels = append(resp.Channels, ChannelSuggestionResponse{
			ChannelID:  ch.ChannelID.String(),
			Name:       ch.Name,
			Price:      types.Round2Float(ch.Price),
			Degenerate: ch.Degenerate,
		})
	}

	return resp
}
