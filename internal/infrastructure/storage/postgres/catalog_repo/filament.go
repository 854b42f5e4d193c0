package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"printdesk/internal/core/id"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/infrastructure/storage/postgres"
)

const filamentTable = "cat_filament"

// FilamentRepo implements filament.Repository.
type FilamentRepo struct {
	*BaseCatalogRepo[*filament.Filament]
}

// NewFilamentRepo creates a new filament repository.
func NewFilamentRepo(txManager *postgres.TxManager) *FilamentRepo {
	return &FilamentRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*filament.Filament](
			txManager,
			filamentTable,
			postgres.ExtractDBColumns[filament.Filament](),
			func() *filament.Filament { return &filament.Filament{} },
		),
	}
}

// ListByStore retrieves every filament of a store.
func (r *FilamentRepo) ListByStore(ctx context.Context, storeID id.ID) ([]filament.Filament, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC")

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

// FindLowStock retrieves filaments at or below the reorder cutoff.
func (r *FilamentRepo) FindLowStock(ctx context.Context, storeID id.ID) ([]filament.Filament, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.LtOrEq{"current_stock": int64(filament.LowStockThreshold)}).
		OrderBy("current_stock ASC")

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

func deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	return out
}
