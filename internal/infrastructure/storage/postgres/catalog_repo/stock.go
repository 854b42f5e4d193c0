package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"printdesk/internal/core/id"
	"printdesk/internal/domain/catalogs/stock"
	"printdesk/internal/infrastructure/storage/postgres"
)

const (
	stockItemTable      = "cat_stock_item"
	inventoryAssetTable = "cat_inventory_asset"
)

// StockRepo implements stock.Repository over two tables: generic sellable
// stock and purchased inventory assets.
type StockRepo struct {
	items  *BaseCatalogRepo[*stock.Item]
	assets *BaseCatalogRepo[*stock.InventoryAsset]
}

// NewStockRepo creates a new stock repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		items: NewBaseCatalogRepo[*stock.Item](
			txManager,
			stockItemTable,
			postgres.ExtractDBColumns[stock.Item](),
			func() *stock.Item { return &stock.Item{} },
		),
		assets: NewBaseCatalogRepo[*stock.InventoryAsset](
			txManager,
			inventoryAssetTable,
			postgres.ExtractDBColumns[stock.InventoryAsset](),
			func() *stock.InventoryAsset { return &stock.InventoryAsset{} },
		),
	}
}

// CreateItem inserts a generic stock item.
func (r *StockRepo) CreateItem(ctx context.Context, item *stock.Item) error {
	return r.items.Create(ctx, item)
}

// UpdateItem modifies a generic stock item.
func (r *StockRepo) UpdateItem(ctx context.Context, item *stock.Item) error {
	return r.items.Update(ctx, item)
}

// GetItem retrieves a generic stock item by ID.
func (r *StockRepo) GetItem(ctx context.Context, itemID id.ID) (*stock.Item, error) {
	return r.items.GetByID(ctx, itemID)
}

// DeleteItem removes a generic stock item.
func (r *StockRepo) DeleteItem(ctx context.Context, itemID id.ID) error {
	return r.items.Delete(ctx, itemID)
}

// ListItems retrieves all generic stock of a store.
func (r *StockRepo) ListItems(ctx context.Context, storeID id.ID) ([]stock.Item, error) {
	q := r.items.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC")

	items, err := r.items.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

// CreateAsset inserts an inventory asset.
func (r *StockRepo) CreateAsset(ctx context.Context, asset *stock.InventoryAsset) error {
	return r.assets.Create(ctx, asset)
}

// UpdateAsset modifies an inventory asset.
func (r *StockRepo) UpdateAsset(ctx context.Context, asset *stock.InventoryAsset) error {
	return r.assets.Update(ctx, asset)
}

// GetAsset retrieves an inventory asset by ID.
func (r *StockRepo) GetAsset(ctx context.Context, assetID id.ID) (*stock.InventoryAsset, error) {
	return r.assets.GetByID(ctx, assetID)
}

// DeleteAsset removes an inventory asset.
func (r *StockRepo) DeleteAsset(ctx context.Context, assetID id.ID) error {
	return r.assets.Delete(ctx, assetID)
}

// ListAssets retrieves all inventory assets of a store.
func (r *StockRepo) ListAssets(ctx context.Context, storeID id.ID) ([]stock.InventoryAsset, error) {
	q := r.assets.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC")

	items, err := r.assets.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}
