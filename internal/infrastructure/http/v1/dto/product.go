package dto

import (
	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// SaveProductRequest creates or updates a product. The server recomputes the
// cost breakdown and prices from the bill of materials and store settings.
type SaveProductRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Description   string                 `json:"description"`
	PrintingHours float64                `json:"printingHours"`
	MarginPercent float64                `json:"marginPercent"`
	FinalPrice    float64                `json:"finalPrice"`
	Filaments     []FilamentUsageRequest `json:"filaments" binding:"required"`
	ChannelIDs    []string               `json:"channelIds"`
}

// ToSaveInput converts the request to the product service input.
func (r *SaveProductRequest) ToSaveInput(storeID id.ID) (product.SaveInput, error) {
	in := product.SaveInput{
		StoreID:       storeID,
		Name:          r.Name,
		Description:   r.Description,
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

// --- Response DTOs ---

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	BaseResponse
	Name                   string                 `json:"name"`
	Description            string                 `json:"description,omitempty"`
	PrintingHours          float64                `json:"printingHours"`
	ProfitMarginPercentage float64                `json:"profitMarginPercentage"`
	FilamentCost           float64                `json:"filamentCost"`
	EnergyCost             float64                `json:"energyCost"`
	BaseCost               float64                `json:"baseCost"`
	PriceWithMargin        float64                `json:"priceWithMargin"`
	FinalPrice             float64                `json:"finalPrice"`
	Filaments              []FilamentLinkResponse `json:"filaments,omitempty"`
}

// FilamentLinkResponse is one bill-of-materials line.
type FilamentLinkResponse struct {
	FilamentID string  `json:"filamentId"`
	Grams      float64 `json:"grams"`
}

// FromProduct creates response from domain product.
func FromProduct(p *product.Product, links []product.FilamentLink) *ProductResponse {
	resp := &ProductResponse{
		BaseResponse:           FromBase(p.BaseEntity),
		Name:                   p.Name,
		Description:            p.Description,
		PrintingHours:          types.Round2Float(p.PrintingHours),
		ProfitMarginPercentage: types.Round2Float(p.ProfitMarginPercentage),
		FilamentCost:           types.Round2Float(p.FilamentCost),
		EnergyCost:             types.Round2Float(p.EnergyCost),
		BaseCost:               types.Round2Float(p.BaseCost),
		PriceWithMargin:        types.Round2Float(p.PriceWithMargin),
		FinalPrice:             types.Round2Float(p.FinalPrice),
	}

	for _, link := range links {
		resp.Filaments = append(resp.Filaments, FilamentLinkResponse{
			FilamentID: link.FilamentID.String(),
			Grams:      types.Round2Float(link.Grams.Money()),
		})
	}

	return resp
}

// FromProducts maps a slice of domain products without their links.
func FromProducts(items []product.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, FromProduct(&items[i], nil))
	}
	return out
}
