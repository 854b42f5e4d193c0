package dto

import (
	"time"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
)

// --- Request DTOs ---

// CreateFilamentRequest registers a new spool with its first purchase.
type CreateFilamentRequest struct {
	Name       string  `json:"name" binding:"required"`
	Material   string  `json:"material"`
	Color      string  `json:"color"`
	Grams      float64 `json:"grams" binding:"required"`
	TotalValue float64 `json:"totalValue" binding:"required"`
}

// PurchaseFilamentRequest merges an additional purchase into a spool.
type PurchaseFilamentRequest struct {
	Grams      float64 `json:"grams" binding:"required"`
	TotalValue float64 `json:"totalValue" binding:"required"`
}

// ConsumeFilamentRequest deducts printed grams from a spool.
type ConsumeFilamentRequest struct {
	Grams float64 `json:"grams" binding:"required"`
}

// BreakageQuery holds the prediction horizon.
type BreakageQuery struct {
	HorizonDays int `form:"horizonDays" binding:"omitempty,min=1,max=365"`
}

// --- Response DTOs ---

// FilamentResponse represents a spool in API responses. Grams round to
// 2 decimals; the per-gram price keeps 4.
type FilamentResponse struct {
	BaseResponse
	Name         string  `json:"name"`
	Material     string  `json:"material,omitempty"`
	Color        string  `json:"color,omitempty"`
	PricePerGram float64 `json:"pricePerGram"`
	CurrentStock float64 `json:"currentStock"`
	TotalValue   float64 `json:"totalValue"`
	LowStock     bool    `json:"lowStock"`
}

// FromFilament creates response from domain filament.
func FromFilament(f *filament.Filament) *FilamentResponse {
	return &FilamentResponse{
		BaseResponse: FromBase(f.BaseEntity),
		Name:         f.Name,
		Material:     f.Material,
		Color:        f.Color,
		PricePerGram: types.Round4Float(f.PricePerGram),
		CurrentStock: types.Round2Float(f.CurrentStock.Money()),
		TotalValue:   types.Round2Float(f.TotalValue),
		LowStock:     f.IsLowStock(),
	}
}

// FromFilaments maps a slice of domain filaments.
func FromFilaments(items []filament.Filament) []*FilamentResponse {
	out := make([]*FilamentResponse, 0, len(items))
	for i := range items {
		out = append(out, FromFilament(&items[i]))
	}
	return out
}

// BreakageResponse is the stock run-out prediction.
type BreakageResponse struct {
	WillRunOut       bool       `json:"willRunOut"`
	DaysRemaining    int        `json:"daysRemaining,omitempty"`
	RunOutDate       *time.Time `json:"runOutDate,omitempty"`
	RecommendedGrams float64    `json:"recommendedGrams"`
}

// FromBreakage creates response from the domain prediction.
func FromBreakage(p filament.BreakagePrediction) *BreakageResponse {
	resp := &BreakageResponse{
		WillRunOut:       p.WillRunOut,
		DaysRemaining:    p.DaysRemaining,
		RecommendedGrams: types.Round2Float(p.RecommendedGrams.Money()),
	}
	if !p.RunOutDate.IsZero() {
		runOut := p.RunOutDate
		resp.RunOutDate = &runOut
	}
	return resp
}
