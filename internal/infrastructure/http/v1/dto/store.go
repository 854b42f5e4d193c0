package dto

import (
	"time"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/store"
)

// --- Request DTOs ---

// UpdateStoreSettingsRequest updates the financial settings of a store.
type UpdateStoreSettingsRequest struct {
	Name             string  `json:"name"`
	PaysTax          bool    `json:"paysTax"`
	TaxPercentage    float64 `json:"taxPercentage" binding:"min=0,max=99.99"`
	EnergyCostPerKwh float64 `json:"energyCostPerKwh" binding:"min=0"`
	Version          int     `json:"version" binding:"required,min=1"`
}

// --- Response DTOs ---

// StoreResponse represents a seller account in API responses.
type StoreResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PaysTax          bool      `json:"paysTax"`
	TaxPercentage    float64   `json:"taxPercentage"`
	EnergyCostPerKwh float64   `json:"energyCostPerKwh"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FromStore creates response from domain store.
func FromStore(s *store.Store) *StoreResponse {
	return &StoreResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		PaysTax:          s.PaysTax,
		TaxPercentage:    types.Round2Float(s.TaxPercentage),
		EnergyCostPerKwh: types.Round4Float(s.EnergyCostPerKwh),
		Version:          s.Version,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
