package dto

import (
	"time"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
)

// --- Request DTOs ---

// CreatePlatformRequest registers a sales channel.
type CreatePlatformRequest struct {
	Name                 string  `json:"name" binding:"required"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	FixedFeePerItem      float64 `json:"fixedFeePerItem"`
}

// UpdatePlatformRequest updates a sales channel.
type UpdatePlatformRequest struct {
	Name                 string  `json:"name" binding:"required"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	FixedFeePerItem      float64 `json:"fixedFeePerItem"`
	Version              int     `json:"version" binding:"required,min=1"`
}

// --- Response DTOs ---

// PlatformResponse represents a sales channel in API responses.
type PlatformResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	CommissionPercentage float64   `json:"commissionPercentage"`
	FixedFeePerItem      float64   `json:"fixedFeePerItem"`
	Version              int       `json:"version"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// FromPlatform creates response from domain platform.
func FromPlatform(p *platform.Platform) *PlatformResponse {
	return &PlatformResponse{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		CommissionPercentage: types.Round2Float(p.CommissionPercentage),
		FixedFeePerItem:      types.Round2Float(p.FixedFeePerItem),
		Version:              p.Version,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// FromPlatforms maps a slice of domain platforms.
func FromPlatforms(items []platform.Platform) []*PlatformResponse {
	out := make([]*PlatformResponse, 0, len(items))
	for i := range items {
		out = append(out, FromPlatform(&items[i]))
	}
	return out
}
