package filament

import (
	"context"
	"fmt"

	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/internal/core/types"
	"printdesk/internal/domain"
	"printdesk/pkg/logger"
)

// Repository persists filaments.
type Repository interface {
	domain.CatalogRepository[*Filament]

	// ListByStore retrieves every filament of a store.
	ListByStore(ctx context.Context, storeID id.ID) ([]Filament, error)

	// FindLowStock retrieves filaments at or below the reorder cutoff.
	FindLowStock(ctx context.Context, storeID id.ID) ([]Filament, error)
}

// Service provides business logic for the filament catalog.
type Service struct {
	*domain.CatalogService[*Filament]
	repo      Repository
	txManager tx.Manager
	log       *logger.Logger
}

// NewService creates a new filament service.
func NewService(repo Repository, txManager tx.Manager, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Filament]{
		Repo:       repo,
		TxManager:  txManager,
		Logger:     log,
		EntityName: "filament",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
		log:            log.WithComponent("filament"),
	}
}

// Register records the first purchase of a spool: the per-gram price is
// derived from the purchase value and weight.
func (s *Service) Register(ctx context.Context, storeID id.ID, name, material, color string, grams types.Grams, totalValue types.Money) (*Filament, error) {
	f, err := New(storeID, name, material, color, grams, totalValue)
	if err != nil {
		return nil, err
	}
	if err := s.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Purchase merges an additional purchase into an existing spool.
func (s *Service) Purchase(ctx context.Context, filamentID id.ID, grams types.Grams, totalValue types.Money) (*Filament, error) {
	var out *Filament
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		f, err := s.GetByID(ctx, filamentID)
		if err != nil {
			return err
		}
		if err := f.AddPurchase(grams, totalValue); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, f); err != nil {
			return fmt.Errorf("update filament: %w", err)
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.runAfterUpdate(ctx, out)
	return out, nil
}

// Consume deducts printed grams from a spool.
func (s *Service) Consume(ctx context.Context, filamentID id.ID, grams types.Grams) (*Filament, error) {
	var out *Filament
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		f, err := s.GetByID(ctx, filamentID)
		if err != nil {
			return err
		}
		if err := f.Consume(grams); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, f); err != nil {
			return fmt.Errorf("update filament: %w", err)
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.runAfterUpdate(ctx, out)
	return out, nil
}

// runAfterUpdate runs the after-update hooks for mutations that update the
// repository directly instead of going through CatalogService.Update, so
// registered listeners (audit capture) still see the change.
func (s *Service) runAfterUpdate(ctx context.Context, f *Filament) {
	if err := s.Hooks().Run(ctx, domain.AfterUpdate, f); err != nil {
		s.log.WithContext(ctx).Warnw("after-update hook failed", "error", err, "filament_id", f.ID)
	}
}

// ListByStore retrieves every filament of a store.
func (s *Service) ListByStore(ctx context.Context, storeID id.ID) ([]Filament, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// LowStock retrieves filaments at or below the reorder cutoff.
func (s *Service) LowStock(ctx context.Context, storeID id.ID) ([]Filament, error) {
	return s.repo.FindLowStock(ctx, storeID)
}
