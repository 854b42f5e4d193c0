package stock

import (
	"context"
	"fmt"

	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/internal/core/types"
	"printdesk/pkg/logger"
)

// Repository persists generic stock and inventory assets.
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	UpdateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, itemID id.ID) (*Item, error)
	DeleteItem(ctx context.Context, itemID id.ID) error
	ListItems(ctx context.Context, storeID id.ID) ([]Item, error)

	CreateAsset(ctx context.Context, asset *InventoryAsset) error
	UpdateAsset(ctx context.Context, asset *InventoryAsset) error
	GetAsset(ctx context.Context, assetID id.ID) (*InventoryAsset, error)
	DeleteAsset(ctx context.Context, assetID id.ID) error
	ListAssets(ctx context.Context, storeID id.ID) ([]InventoryAsset, error)
}

// Service provides business logic for non-filament stock.
type Service struct {
	repo      Repository
	txManager tx.Manager
	log       *logger.Logger
}

// NewService creates a new stock service.
func NewService(repo Repository, txManager tx.Manager, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		log:       log.WithComponent("stock"),
	}
}

// CreateItem registers a generic sellable stock line.
func (s *Service) CreateItem(ctx context.Context, storeID id.ID, name string, quantity int64, totalValue types.Money) (*Item, error) {
	item := NewItem(storeID, name, quantity, totalValue)
	if err := item.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.CreateItem(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	return item, nil
}

// UpdateItem replaces the mutable fields of a stock line.
func (s *Service) UpdateItem(ctx context.Context, itemID id.ID, name string, quantity int64, totalValue types.Money) (*Item, error) {
	var out *Item
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		item, err := s.repo.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		item.Name = name
		item.Quantity = quantity
		item.TotalValue = totalValue
		if err := item.Validate(ctx); err != nil {
			return err
		}
		item.Touch()
		if err := s.repo.UpdateItem(ctx, item); err != nil {
			return fmt.Errorf("update stock item: %w", err)
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteItem removes a stock line.
func (s *Service) DeleteItem(ctx context.Context, itemID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.DeleteItem(ctx, itemID)
	})
}

// ListItems retrieves all generic stock of a store.
func (s *Service) ListItems(ctx context.Context, storeID id.ID) ([]Item, error) {
	return s.repo.ListItems(ctx, storeID)
}

// CreateAsset registers a purchased asset (printer, tools, spare parts).
func (s *Service) CreateAsset(ctx context.Context, storeID id.ID, name string, quantity int64, paidValue types.Money) (*InventoryAsset, error) {
	asset := NewAsset(storeID, name, quantity, paidValue)
	if err := asset.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.CreateAsset(ctx, asset)
	})
	if err != nil {
		return nil, fmt.Errorf("create inventory asset: %w", err)
	}
	return asset, nil
}

// UpdateAsset replaces the mutable fields of an asset.
func (s *Service) UpdateAsset(ctx context.Context, assetID id.ID, name string, quantity int64, paidValue types.Money) (*InventoryAsset, error) {
	var out *InventoryAsset
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		asset, err := s.repo.GetAsset(ctx, assetID)
		if err != nil {
			return err
		}
		asset.Name = name
		asset.Quantity = quantity
		asset.PaidValue = paidValue
		if err := asset.Validate(ctx); err != nil {
			return err
		}
		asset.Touch()
		if err := s.repo.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("update inventory asset: %w", err)
		}
		out = asset
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAsset removes an asset.
func (s *Service) DeleteAsset(ctx context.Context, assetID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.DeleteAsset(ctx, assetID)
	})
}

// ListAssets retrieves all inventory assets of a store.
func (s *Service) ListAssets(ctx context.Context, storeID id.ID) ([]InventoryAsset, error) {
	return s.repo.ListAssets(ctx, storeID)
}
