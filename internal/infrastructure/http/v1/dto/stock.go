package dto

import (
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/stock"
)

// --- Request DTOs ---

// SaveStockItemRequest creates or updates a generic stock line.
type SaveStockItemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   int64   `json:"quantity" binding:"min=0"`
	TotalValue float64 `json:"totalValue" binding:"min=0"`
}

// SaveInventoryAssetRequest creates or updates a purchased asset.
type SaveInventoryAssetRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int64   `json:"quantity" binding:"min=0"`
	PaidValue float64 `json:"paidValue" binding:"min=0"`
}

// --- Response DTOs ---

// StockItemResponse represents a generic stock line.
type StockItemResponse struct {
	BaseResponse
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	TotalValue float64 `json:"totalValue"`
}

// FromStockItem creates response from domain stock item.
func FromStockItem(i *stock.Item) *StockItemResponse {
	return &StockItemResponse{
		BaseResponse: FromBase(i.BaseEntity),
		Name:         i.Name,
		Quantity:     i.Quantity,
		TotalValue:   types.Round2Float(i.TotalValue),
	}
}

// FromStockItems maps a slice of domain stock items.
func FromStockItems(items []stock.Item) []*StockItemResponse {
	out := make([]*StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromStockItem(&items[i]))
	}
	return out
}

// InventoryAssetResponse represents a purchased asset.
type InventoryAssetResponse struct {
	BaseResponse
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	PaidValue float64 `json:"paidValue"`
}

// FromInventoryAsset creates response from domain asset.
func FromInventoryAsset(a *stock.InventoryAsset) *InventoryAssetResponse {
	return &InventoryAssetResponse{
		BaseResponse: FromBase(a.BaseEntity),
		Name:         a.Name,
		Quantity:     a.Quantity,
		PaidValue:    types.Round2Float(a.PaidValue),
	}
}

// FromInventoryAssets maps a slice of domain assets.
func FromInventoryAssets(items []stock.InventoryAsset) []*InventoryAssetResponse {
	out := make([]*InventoryAssetResponse, 0, len(items))
	for i := range items {
		out = append(out, FromInventoryAsset(&items[i]))
	}
	return out
}
