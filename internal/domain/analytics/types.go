// Package analytics folds historical sale records into the multi-dimensional
// dashboard report: grand totals, a zero-filled daily trend, and per-product,
// per-platform, and per-filament rollups.
package analytics

import (
	"time"

	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/sales"
)

// Input carries everything one aggregation run reads. All records are
// pre-scoped to one store by the caller; the engine itself performs no I/O
// and reads no clock.
type Input struct {
	// Start and End are inclusive calendar days (UTC midnight).
	Start time.Time
	End   time.Time

	Sales     []sales.Sale
	Products  []product.Product
	Links     []product.FilamentLink
	Filaments []filament.Filament
	Platforms []platform.Platform
}

// Report is the computed dashboard. Monetary values stay at full precision;
// rounding to 2 decimals happens once, in the DTO layer.
type Report struct {
	Totals      Totals
	TopProducts []ProductRollup
	Filaments   FilamentsSection
	Platforms   []PlatformRollup
	Trend       []TrendBucket
	Warnings    []Warning
}

// Totals are the grand totals over every sale in range.
type Totals struct {
	QuantitySold int64
	Gross        types.Money
	Commission   types.Money
	Tax          types.Money
	Net          types.Money
}

// TrendBucket is one calendar day of the zero-filled trend series.
type TrendBucket struct {
	Date       string // YYYY-MM-DD, UTC
	Quantity   int64
	Gross      types.Money
	Net        types.Money
	Commission types.Money
	Tax        types.Money
}

// ProductRollup aggregates sales of one product. Trend is day-aligned with
// Report.Trend and accumulates gross revenue.
type ProductRollup struct {
	ID       id.ID
	Name     string
	Quantity int64
	Revenue  types.Money
	Trend    []types.Money
}

// PlatformRollup aggregates sales through one channel. Trend is day-aligned
// with Report.Trend and accumulates gross revenue.
type PlatformRollup struct {
	ID         id.ID
	Name       string
	Revenue    types.Money
	Commission types.Money
	Trend      []types.Money
}

// FilamentsSection reports material consumption and reorder flags.
type FilamentsSection struct {
	TotalUsedGrams types.Grams
	MostUsed       []FilamentUsage
	LowStock       []LowStockEntry
}

// FilamentUsage is the grams of one filament consumed by sales in range.
type FilamentUsage struct {
	ID        id.ID
	Name      string
	GramsUsed types.Grams
}

// LowStockEntry flags a filament at or below the reorder cutoff,
// independent of the date range.
type LowStockEntry struct {
	ID           id.ID
	Name         string
	CurrentStock types.Grams
}

// Warning records a referential gap: a sale referencing an entity missing
// from the supplied collections. The sale still counts in grand totals but
// is excluded from the affected dimension.
type Warning struct {
	SaleID    id.ID
	Dimension string // "product", "platform", or "filament"
	RefID     id.ID
}
