package dto

import (
	"time"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/sales"
)

// --- Request DTOs ---

// RecordSaleRequest records a sale. Commission, tax, and net are computed
// server-side from the platform and store configuration current at recording
// time and stored on the sale.
type RecordSaleRequest struct {
	ProductID  string `json:"productId" binding:"required,uuid"`
	PlatformID string `json:"platformId" binding:"required,uuid"`
	Quantity   int64  `json:"quantity" binding:"required,min=1"`

	// UnitPrice zero or absent means "use the product's final price".
	UnitPrice float64 `json:"unitPrice"`

	// SaleDate absent means "today".
	SaleDate *time.Time `json:"saleDate"`
}

// ToRecordInput converts the request to the sales service input.
func (r *RecordSaleRequest) ToRecordInput(storeID id.ID, now time.Time) (sales.RecordInput, error) {
	in := sales.RecordInput{
		StoreID:   storeID,
		Quantity:  r.Quantity,
		UnitPrice: types.NewMoney(r.UnitPrice),
		Now:       now,
	}

	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return in, apperror.NewValidation("invalid product id").WithDetail("productId", r.ProductID)
	}
	in.ProductID = productID

	platformID, err := id.Parse(r.PlatformID)
	if err != nil {
		return in, apperror.NewValidation("invalid platform id").WithDetail("platformId", r.PlatformID)
	}
	in.PlatformID = platformID

	if r.SaleDate != nil {
		in.SaleDate = *r.SaleDate
	}

	return in, nil
}

// --- Response DTOs ---

// SaleResponse represents a recorded sale with its economics snapshot.
type SaleResponse struct {
	BaseResponse
	ProductID       string    `json:"productId"`
	PlatformID      string    `json:"platformId"`
	Quantity        int64     `json:"quantity"`
	UnitPrice       float64   `json:"unitPrice"`
	TotalValue      float64   `json:"totalValue"`
	SaleDate        time.Time `json:"saleDate"`
	CommissionValue float64   `json:"commissionValue"`
	TaxValue        float64   `json:"taxValue"`
	NetValue        float64   `json:"netValue"`
}

// FromSale creates response from domain sale.
func FromSale(s *sales.Sale) *SaleResponse {
	return &SaleResponse{
		BaseResponse:    FromBase(s.BaseEntity),
		ProductID:       s.ProductID.String(),
		PlatformID:      s.PlatformID.String(),
		Quantity:        s.Quantity,
		UnitPrice:       types.Round2Float(s.UnitPrice),
		TotalValue:      types.Round2Float(s.TotalValue),
		SaleDate:        s.SaleDate,
		CommissionValue: types.Round2Float(s.CommissionValue),
		TaxValue:        types.Round2Float(s.TaxValue),
		NetValue:        types.Round2Float(s.NetValue),
	}
}

// FromSales maps a slice of domain sales.
func FromSales(items []sales.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(items))
	for i := range items {
		out = append(out, FromSale(&items[i]))
	}
	return out
}
