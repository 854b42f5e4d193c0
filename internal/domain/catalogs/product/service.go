package product

import (
	"context"
	"fmt"

	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/internal/core/types"
	"printdesk/internal/domain"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/domain/pricing"
	"printdesk/pkg/logger"
)

// Repository persists products and their bill of materials.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListByStore retrieves every product of a store.
	ListByStore(ctx context.Context, storeID id.ID) ([]Product, error)

	// ReplaceLinks swaps the full bill of materials of a product.
	ReplaceLinks(ctx context.Context, productID id.ID, links []FilamentLink) error

	// ListLinks retrieves bill-of-materials lines for a set of products.
	ListLinks(ctx context.Context, productIDs []id.ID) ([]FilamentLink, error)
}

// FilamentSource resolves filaments for bill-of-materials pricing.
type FilamentSource interface {
	GetByID(ctx context.Context, id id.ID) (*filament.Filament, error)
}

// ChannelSource resolves sales channels for price suggestions.
type ChannelSource interface {
	GetMany(ctx context.Context, ids []id.ID) ([]platform.Platform, error)
	ListAll(ctx context.Context) ([]platform.Platform, error)
}

// SettingsSource resolves store financial settings.
type SettingsSource interface {
	Settings(ctx context.Context, storeID id.ID) (store.Settings, error)
}

// Service provides business logic for the product catalog. Creating or
// updating a product recomputes its cost breakdown from the current bill of
// materials and store settings.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	filaments FilamentSource
	channels  ChannelSource
	settings  SettingsSource
	txManager tx.Manager
}

// NewService creates a new product service.
func NewService(
	repo Repository,
	filaments FilamentSource,
	channels ChannelSource,
	settings SettingsSource,
	txManager tx.Manager,
	log *logger.Logger,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Logger:     log,
		EntityName: "product",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
		filaments:      filaments,
		channels:       channels,
		settings:       settings,
		txManager:      txManager,
	}
}

// LinkInput is one bill-of-materials line of a save request.
type LinkInput struct {
	FilamentID id.ID
	Grams      types.Grams
}

// SaveInput carries everything needed to price and persist a product.
type SaveInput struct {
	StoreID     id.ID
	Name        string
	Description string

	PrintingHours types.Money
	MarginPercent types.Money

	// FinalPrice is the user-chosen list price; zero means "use the
	// recommended price".
	FinalPrice types.Money

	Links      []LinkInput
	ChannelIDs []id.ID
}

// Quote is a full pricing computation for a product configuration.
type Quote struct {
	Breakdown        pricing.Breakdown
	Channels         []pricing.ChannelSuggestion
	RecommendedPrice types.Money
	Margin           pricing.MarginReport
}

// Quote prices a product configuration without persisting anything. Powers
// the product form preview.
func (s *Service) Quote(ctx context.Context, in SaveInput) (*Quote, error) {
	settings, err := s.settings.Settings(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	return s.quote(ctx, in, settings)
}

func (s *Service) quote(ctx context.Context, in SaveInput, settings store.Settings) (*Quote, error) {
	usages := make([]pricing.FilamentUsage, 0, len(in.Links))
	for _, link := range in.Links {
		f, err := s.filaments.GetByID(ctx, link.FilamentID)
		if err != nil {
			return nil, err
		}
		usages = append(usages, pricing.FilamentUsage{
			FilamentID:   f.ID,
			PricePerGram: f.PricePerGram,
			Grams:        link.Grams,
		})
	}

	costInput := pricing.CostInput{
		Filaments:        usages,
		PrintingHours:    in.PrintingHours,
		EnergyCostPerKwh: settings.EnergyCostPerKwh,
		MarginPercent:    in.MarginPercent,
	}
	if err := costInput.Validate(); err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeBreakdown(costInput, settings)

	var platforms []platform.Platform
	var err error
	if len(in.ChannelIDs) > 0 {
		platforms, err = s.channels.GetMany(ctx, in.ChannelIDs)
	} else {
		platforms, err = s.channels.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	channels := make([]pricing.Channel, 0, len(platforms))
	for _, p := range platforms {
		channels = append(channels, pricing.Channel{ID: p.ID, Name: p.Name, Fees: p.Fees()})
	}

	suggestions := pricing.SuggestForChannels(breakdown.PriceWithMargin, channels)
	recommended := pricing.RecommendedListPrice(suggestions)

	finalPrice := in.FinalPrice
	if !finalPrice.IsPositive() {
		finalPrice = recommended
	}
	margin := pricing.BackOutMargin(finalPrice, breakdown.BaseCost, settings)

	return &Quote{
		Breakdown:        breakdown,
		Channels:         suggestions,
		RecommendedPrice: recommended,
		Margin:           margin,
	}, nil
}

// CreateWithPricing prices the configuration and persists the product with
// its bill of materials in one transaction.
func (s *Service) CreateWithPricing(ctx context.Context, in SaveInput) (*Product, *Quote, error) {
	settings, err := s.settings.Settings(ctx, in.StoreID)
	if err != nil {
		return nil, nil, err
	}
	quote, err := s.quote(ctx, in, settings)
	if err != nil {
		return nil, nil, err
	}

	p := New(in.StoreID, in.Name)
	p.Description = in.Description
	applyQuote(p, in, quote)

	if err := p.Validate(ctx); err != nil {
		return nil, nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		return s.repo.ReplaceLinks(ctx, p.ID, buildLinks(p.ID, in.Links))
	})
	if err != nil {
		return nil, nil, err
	}
	return p, quote, nil
}

// UpdateWithPricing reprices and persists an existing product.
func (s *Service) UpdateWithPricing(ctx context.Context, productID id.ID, in SaveInput) (*Product, *Quote, error) {
	settings, err := s.settings.Settings(ctx, in.StoreID)
	if err != nil {
		return nil, nil, err
	}
	quote, err := s.quote(ctx, in, settings)
	if err != nil {
		return nil, nil, err
	}

	var p *Product
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		p.Name = in.Name
		p.Description = in.Description
		applyQuote(p, in, quote)
		p.Touch()

		if err := p.Validate(ctx); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, p); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		return s.repo.ReplaceLinks(ctx, p.ID, buildLinks(p.ID, in.Links))
	})
	if err != nil {
		return nil, nil, err
	}
	return p, quote, nil
}

// ListByStore retrieves every product of a store.
func (s *Service) ListByStore(ctx context.Context, storeID id.ID) ([]Product, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// ListLinks retrieves bill-of-materials lines for a set of products.
func (s *Service) ListLinks(ctx context.Context, productIDs []id.ID) ([]FilamentLink, error) {
	return s.repo.ListLinks(ctx, productIDs)
}

func applyQuote(p *Product, in SaveInput, quote *Quote) {
	p.PrintingHours = in.PrintingHours
	p.ProfitMarginPercentage = in.MarginPercent
	p.FilamentCost = quote.Breakdown.FilamentCost
	p.EnergyCost = quote.Breakdown.EnergyCost
	p.BaseCost = quote.Breakdown.BaseCost
	p.PriceWithMargin = quote.Breakdown.PriceWithMargin

	if in.FinalPrice.IsPositive() {
		p.FinalPrice = in.FinalPrice
	} else {
		p.FinalPrice = quote.RecommendedPrice
	}
}

func buildLinks(productID id.ID, inputs []LinkInput) []FilamentLink {
	links := make([]FilamentLink, 0, len(inputs))
	for _, in := range inputs {
		links = append(links, FilamentLink{
			ProductID:  productID,
			FilamentID: in.FilamentID,
			Grams:      in.Grams,
		})
	}
	return links
}
