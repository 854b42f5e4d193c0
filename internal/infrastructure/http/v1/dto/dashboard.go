package dto

import (
	"printdesk/internal/core/types"
	"printdesk/internal/domain/analytics"
)

// DashboardQuery holds the optional date range of a stats request.
type DashboardQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Totals    TotalsResponse    `json:"totals"`
	Products  ProductsSection   `json:"products"`
	Filaments FilamentsSection  `json:"filaments"`
	Platforms PlatformsSection  `json:"platforms"`
	Stock     StockSection      `json:"stock"`
	Trend     []TrendPoint      `json:"trend"`
	Warnings  []WarningResponse `json:"warnings,omitempty"`
}

// TotalsResponse holds the grand totals over the requested range.
type TotalsResponse struct {
	QuantitySold   int64   `json:"quantitySold"`
	GrossRevenue   float64 `json:"grossRevenue"`
	CommissionPaid float64 `json:"commissionPaid"`
	TaxPaid        float64 `json:"taxPaid"`
	NetRevenue     float64 `json:"netRevenue"`
}

// ProductsSection ranks products by units sold.
type ProductsSection struct {
	TopProducts []ProductRollupResponse `json:"topProducts"`
}

// ProductRollupResponse is one ranked product with its day-aligned revenue
// trend.
type ProductRollupResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity int64     `json:"quantity"`
	Revenue  float64   `json:"revenue"`
	Trend    []float64 `json:"trend"`
}

// FilamentsSection reports material consumption and reorder flags.
type FilamentsSection struct {
	TotalUsedGrams float64                 `json:"totalUsedGrams"`
	MostUsed       []FilamentUsageResponse `json:"mostUsed"`
	LowStock       []LowStockEntryResponse `json:"lowStock"`
}

// FilamentUsageResponse is grams consumed of one filament.
type FilamentUsageResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	GramsUsed float64 `json:"gramsUsed"`
}

// LowStockEntryResponse flags a filament at or below the reorder cutoff.
type LowStockEntryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CurrentStock float64 `json:"currentStock"`
}

// PlatformsSection ranks channels by revenue.
type PlatformsSection struct {
	Ranking []PlatformRollupResponse `json:"ranking"`
}

// PlatformRollupResponse is one ranked channel with its day-aligned revenue
// trend.
type PlatformRollupResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Revenue    float64   `json:"revenue"`
	Commission float64   `json:"commission"`
	Trend      []float64 `json:"trend"`
}

// StockSection is the current inventory valuation.
type StockSection struct {
	TotalFilamentStockValue float64 `json:"totalFilamentStockValue"`
	TotalStockValue         float64 `json:"totalStockValue"`
	TotalInventoryValue     float64 `json:"totalInventoryValue"`
}

// TrendPoint is one calendar day of the zero-filled trend series.
type TrendPoint struct {
	Date       string  `json:"date"`
	Quantity   int64   `json:"quantity"`
	Gross      float64 `json:"gross"`
	Net        float64 `json:"net"`
	Commission float64 `json:"commission"`
	Tax        float64 `json:"tax"`
}

// WarningResponse surfaces a referential gap found during aggregation.
type WarningResponse struct {
	SaleID    string `json:"saleId"`
	Dimension string `json:"dimension"`
	RefID     string `json:"refId"`
}

// FromStats builds the dashboard response, rounding every monetary value to
// 2 decimals exactly once.
func FromStats(stats *analytics.Stats) *DashboardResponse {
	report := stats.Report

	resp := &DashboardResponse{
		Totals: TotalsResponse{
			QuantitySold:   report.Totals.QuantitySold,
			GrossRevenue:   types.Round2Float(report.Totals.Gross),
			CommissionPaid: types.Round2Float(report.Totals.Commission),
			TaxPaid:        types.Round2Float(report.Totals.Tax),
			NetRevenue:     types.Round2Float(report.Totals.Net),
		},
		Products: ProductsSection{
			TopProducts: make([]ProductRollupResponse, 0, len(report.TopProducts)),
		},
		Filaments: FilamentsSection{
			TotalUsedGrams: roundGrams(report.Filaments.TotalUsedGrams),
			MostUsed:       make([]FilamentUsageResponse, 0, len(report.Filaments.MostUsed)),
			LowStock:       make([]LowStockEntryResponse, 0, len(report.Filaments.LowStock)),
		},
		Platforms: PlatformsSection{
			Ranking: make([]PlatformRollupResponse, 0, len(report.Platforms)),
		},
		Stock: StockSection{
			TotalFilamentStockValue: types.Round2Float(stats.Stock.FilamentStock),
			TotalStockValue:         types.Round2Float(stats.Stock.GenericStock),
			TotalInventoryValue:     types.Round2Float(stats.Stock.Inventory),
		},
		Trend: make([]TrendPoint, 0, len(report.Trend)),
	}

	for _, p := range report.TopProducts {
		resp.Products.TopProducts = append(resp.Products.TopProducts, ProductRollupResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  types.Round2Float(p.Revenue),
			Trend:    roundTrend(p.Trend),
		})
	}

	for _, f := range report.Filaments.MostUsed {
		resp.Filaments.MostUsed = append(resp.Filaments.MostUsed, FilamentUsageResponse{
			ID:        f.ID.String(),
			Name:      f.Name,
			GramsUsed: roundGrams(f.GramsUsed),
		})
	}

	for _, f := range report.Filaments.LowStock {
		resp.Filaments.LowStock = append(resp.Filaments.LowStock, LowStockEntryResponse{
			ID:           f.ID.String(),
			Name:         f.Name,
			CurrentStock: roundGrams(f.CurrentStock),
		})
	}

	for _, p := range report.Platforms {
		resp.Platforms.Ranking = append(resp.Platforms.Ranking, PlatformRollupResponse{
			ID:         p.ID.String(),
			Name:       p.Name,
			Revenue:    types.Round2Float(p.Revenue),
			Commission: types.Round2Float(p.Commission),
			Trend:      roundTrend(p.Trend),
		})
	}

	for _, b := range report.Trend {
		resp.Trend = append(resp.Trend, TrendPoint{
			Date:       b.Date,
			Quantity:   b.Quantity,
			Gross:      types.Round2Float(b.Gross),
			Net:        types.Round2Float(b.Net),
			Commission: types.Round2Float(b.Commission),
			Tax:        types.Round2Float(b.Tax),
		})
	}

	for _, w := range report.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{
			SaleID:    w.SaleID.String(),
			Dimension: w.Dimension,
			RefID:     w.RefID.String(),
		})
	}

	return resp
}

func roundTrend(trend []types.Money) []float64 {
	out := make([]float64, len(trend))
	for i, v := range trend {
		out[i] = types.Round2Float(v)
	}
	return out
}

func roundGrams(g types.Grams) float64 {
	return types.Round2Float(g.Money())
}
