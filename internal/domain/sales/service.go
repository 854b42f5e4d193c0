package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/internal/core/types"
	"printdesk/internal/domain"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/domain/ledger"
	"printdesk/pkg/logger"
)

// Repository persists sales.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id id.ID) (*Sale, error)
	ListByDateRange(ctx context.Context, storeID id.ID, from, to time.Time) ([]Sale, error)
}

// ProductSource resolves products and their bill of materials.
type ProductSource interface {
	GetByID(ctx context.Context, id id.ID) (*product.Product, error)
	ListLinks(ctx context.Context, productIDs []id.ID) ([]product.FilamentLink, error)
}

// PlatformSource resolves channel fee structures.
type PlatformSource interface {
	GetByID(ctx context.Context, id id.ID) (*platform.Platform, error)
}

// SettingsSource resolves store financial settings.
type SettingsSource interface {
	Settings(ctx context.Context, storeID id.ID) (store.Settings, error)
}

// StockConsumer deducts filament used by printed units.
type StockConsumer interface {
	Consume(ctx context.Context, filamentID id.ID, grams types.Grams) (*filament.Filament, error)
}

// Service records sales. Economics are computed once at recording time from
// the platform and store configuration current at that moment and stored on
// the sale (snapshot policy); reports never recompute them.
type Service struct {
	repo      Repository
	products  ProductSource
	platforms PlatformSource
	settings  SettingsSource
	stock     StockConsumer
	txManager tx.Manager
	log       *logger.Logger
	hooks     *domain.HookRegistry[*Sale]
}

// NewService creates a new sales service.
func NewService(
	repo Repository,
	products ProductSource,
	platforms PlatformSource,
	settings SettingsSource,
	stock StockConsumer,
	txManager tx.Manager,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		repo:      repo,
		products:  products,
		platforms: platforms,
		settings:  settings,
		stock:     stock,
		txManager: txManager,
		log:       log.WithComponent("sales"),
		hooks:     domain.NewHookRegistry[*Sale](),
	}
}

// Hooks returns the hook registry for external registration.
func (s *Service) Hooks() *domain.HookRegistry[*Sale] {
	return s.hooks
}

// RecordInput describes one sale to record.
type RecordInput struct {
	StoreID    id.ID
	ProductID  id.ID
	PlatformID id.ID
	Quantity   int64

	// UnitPrice is optional; zero falls back to the product's list price.
	UnitPrice types.Money

	// SaleDate is optional; zero falls back to Now.
	SaleDate time.Time

	// Now is the injected reference time.
	Now time.Time
}

// Record creates a sale with snapshot economics and deducts the filament
// consumed by the printed units, all in one transaction.
func (s *Service) Record(ctx context.Context, in RecordInput) (*Sale, error) {
	prod, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	plat, err := s.platforms.GetByID(ctx, in.PlatformID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Settings(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}

	unitPrice := in.UnitPrice
	if !unitPrice.IsPositive() {
		unitPrice = prod.FinalPrice
	}
	saleDate := in.SaleDate
	if saleDate.IsZero() {
		saleDate = in.Now
	}

	sale := &Sale{
		BaseEntity: entity.NewBaseEntity(in.StoreID),
		ProductID:  in.ProductID,
		PlatformID: in.PlatformID,
		Quantity:   in.Quantity,
		UnitPrice:  unitPrice,
		SaleDate:   saleDate.UTC(),
	}
	sale.TotalValue = unitPrice.Mul(decimal.NewFromInt(in.Quantity))
	sale.ApplyEntry(ledger.For(sale.Facts(), plat.Fees(), settings))

	if err := sale.Validate(ctx); err != nil {
		return nil, err
	}

	links, err := s.products.ListLinks(ctx, []id.ID{prod.ID})
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		for _, link := range links {
			if _, err := s.stock.Consume(ctx, link.FilamentID, link.Grams.MulInt(in.Quantity)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Run after-create hooks outside the transaction; the sale is already
	// recorded, so a failing hook is reported but does not fail the call.
	if err := s.hooks.Run(ctx, domain.AfterCreate, sale); err != nil {
		s.log.WithContext(ctx).Warnw("after-create hook failed", "error", err, "sale_id", sale.ID)
	}

	s.log.WithContext(ctx).Infow("sale recorded",
		"sale_id", sale.ID,
		"product_id", sale.ProductID,
		"platform_id", sale.PlatformID,
		"quantity", sale.Quantity,
		"net", sale.NetValue.String(),
	)
	return sale, nil
}

// GetByID retrieves a sale.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, saleID)
}

// ListByDateRange retrieves the sales of a store inside an inclusive
// calendar-day range.
func (s *Service) ListByDateRange(ctx context.Context, storeID id.ID, from, to time.Time) ([]Sale, error) {
	return s.repo.ListByDateRange(ctx, storeID, from, to)
}
