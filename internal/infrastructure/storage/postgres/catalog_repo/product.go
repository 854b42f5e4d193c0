package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"printdesk/internal/core/id"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/infrastructure/storage/postgres"
)

const (
	productTable     = "cat_product"
	productLinkTable = "cat_product_filament"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// ListByStore retrieves every product of a store.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID id.ID) ([]product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC")

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

// ReplaceLinks swaps the full bill of materials of a product.
// Intended to run inside the transaction that persists the product itself.
func (r *ProductRepo) ReplaceLinks(ctx context.Context, productID id.ID, links []product.FilamentLink) error {
	querier := r.Querier(ctx)

	delSQL, delArgs, err := r.Builder().
		Delete(productLinkTable).
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete links: %w", err)
	}

	if _, err := querier.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("delete links: %w", err)
	}

	if len(links) == 0 {
		return nil
	}

	ins := r.Builder().
		Insert(productLinkTable).
		Columns("product_id", "filament_id", "grams_used")
	for _, link := range links {
		ins = ins.Values(productID, link.FilamentID, int64(link.Grams))
	}

	insSQL, insArgs, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert links: %w", err)
	}

	if _, err := querier.Exec(ctx, insSQL, insArgs...); err != nil {
		return fmt.Errorf("insert links: %w", err)
	}

	return nil
}

// ListLinks retrieves bill-of-materials lines for a set of products.
func (r *ProductRepo) ListLinks(ctx context.Context, productIDs []id.ID) ([]product.FilamentLink, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	q := r.Builder().
		Select("product_id", "filament_id", "grams_used").
		From(productLinkTable).
		Where(squirrel.Eq{"product_id": productIDs}).
		OrderBy("product_id, filament_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var links []product.FilamentLink
	if err := pgxscan.Select(ctx, r.Querier(ctx), &links, sql, args...); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}
