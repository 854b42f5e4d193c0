package analytics

import (
	"context"
	"time"

	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/catalogs/stock"
	"printdesk/internal/domain/sales"
	"printdesk/internal/domain/valuation"
	"printdesk/pkg/logger"
)

// SalesSource fetches sale records for aggregation.
type SalesSource interface {
	ListByDateRange(ctx context.Context, storeID id.ID, from, to time.Time) ([]sales.Sale, error)
}

// ProductSource fetches products and their bill of materials.
type ProductSource interface {
	ListByStore(ctx context.Context, storeID id.ID) ([]product.Product, error)
	ListLinks(ctx context.Context, productIDs []id.ID) ([]product.FilamentLink, error)
}

// FilamentSource fetches filament snapshots.
type FilamentSource interface {
	ListByStore(ctx context.Context, storeID id.ID) ([]filament.Filament, error)
	GetByID(ctx context.Context, id id.ID) (*filament.Filament, error)
}

// PlatformSource fetches sales channels.
type PlatformSource interface {
	ListAll(ctx context.Context) ([]platform.Platform, error)
}

// StockSource fetches generic stock and purchased assets.
type StockSource interface {
	ListItems(ctx context.Context, storeID id.ID) ([]stock.Item, error)
	ListAssets(ctx context.Context, storeID id.ID) ([]stock.InventoryAsset, error)
}

// Stats is the full dashboard payload: the aggregation report plus the
// current inventory valuation.
type Stats struct {
	Report *Report
	Stock  valuation.Value
}

// Service assembles dashboard statistics. It fetches pre-scoped records
// through the sources and hands them to the pure engine.
type Service struct {
	engine    *Engine
	sales     SalesSource
	products  ProductSource
	filaments FilamentSource
	platforms PlatformSource
	stock     StockSource
	log       *logger.Logger
}

// NewService creates an analytics service.
func NewService(
	sales SalesSource,
	products ProductSource,
	filaments FilamentSource,
	platforms PlatformSource,
	stockSource StockSource,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		engine:    NewEngine(log),
		sales:     sales,
		products:  products,
		filaments: filaments,
		platforms: platforms,
		stock:     stockSource,
		log:       log.WithComponent("analytics"),
	}
}

// DashboardStats computes the dashboard for one store. Dates are optional
// ISO calendar dates; the reference time is injected for reproducibility.
func (s *Service) DashboardStats(ctx context.Context, storeID id.ID, startDate, endDate string, now time.Time) (*Stats, error) {
	start, end, err := ResolveRange(startDate, endDate, now)
	if err != nil {
		return nil, err
	}

	saleList, err := s.sales.ListByDateRange(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	productIDs := make([]id.ID, len(products))
	for i := range products {
		productIDs[i] = products[i].ID
	}
	links, err := s.products.ListLinks(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	filaments, err := s.filaments.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	platforms, err := s.platforms.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.stock.ListItems(ctx, storeID)
	if err != nil {
		return nil, err
	}
	assets, err := s.stock.ListAssets(ctx, storeID)
	if err != nil {
		return nil, err
	}

	report, err := s.engine.Aggregate(ctx, Input{
		Start:     start,
		End:       end,
		Sales:     saleList,
		Products:  products,
		Links:     links,
		Filaments: filaments,
		Platforms: platforms,
	})
	if err != nil {
		return nil, err
	}

	return &Stats{
		Report: report,
		Stock:  valuation.Valuate(filaments, items, assets),
	}, nil
}

// breakageWindowDays is the consumption window used to estimate the average
// daily usage of a filament.
const breakageWindowDays = 30

// FilamentBreakage projects when a filament runs out, from its average
// daily consumption over the last 30 days of sales.
func (s *Service) FilamentBreakage(ctx context.Context, storeID, filamentID id.ID, horizonDays int, now time.Time) (*filament.BreakagePrediction, error) {
	f, err := s.filaments.GetByID(ctx, filamentID)
	if err != nil {
		return nil, err
	}

	end := truncateToDay(now.UTC())
	start := end.AddDate(0, 0, -(breakageWindowDays - 1))

	saleList, err := s.sales.ListByDateRange(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	productIDs := make([]id.ID, len(products))
	for i := range products {
		productIDs[i] = products[i].ID
	}
	links, err := s.products.ListLinks(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	// Grams of this filament consumed by each sold product unit.
	gramsPerUnit := make(map[id.ID]types.Grams)
	for _, link := range links {
		if link.FilamentID == filamentID {
			gramsPerUnit[link.ProductID] = gramsPerUnit[link.ProductID].Add(link.Grams)
		}
	}
	used := types.Grams(0)
	for i := range saleList {
		if grams, ok := gramsPerUnit[saleList[i].ProductID]; ok {
			used = used.Add(grams.MulInt(saleList[i].Quantity))
		}
	}

	avgDaily := used.DivInt(breakageWindowDays)
	prediction := filament.PredictBreakage(f.CurrentStock, avgDaily, horizonDays, now)
	return &prediction, nil
}
