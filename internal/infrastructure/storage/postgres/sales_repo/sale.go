// Package sales_repo provides the PostgreSQL implementation of the sales
// repository.
package sales_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/domain/sales"
	"printdesk/internal/infrastructure/storage/postgres"
)

const saleTable = "doc_sale"

// SaleRepo implements sales.Repository.
type SaleRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[sales.Sale](),
	}
}

func (r *SaleRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a sale with its economics snapshot.
func (r *SaleRepo) Create(ctx context.Context, s *sales.Sale) error {
	data := postgres.StructToMap(s)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(saleTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	return nil
}

// GetByID retrieves a sale by ID.
func (r *SaleRepo) GetByID(ctx context.Context, saleID id.ID) (*sales.Sale, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(saleTable).
		Where(squirrel.Eq{"id": saleID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s sales.Sale
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	return &s, nil
}

// ListByDateRange retrieves sales of a store whose sale date falls inside
// [from, to]. Bounds are inclusive, day-granular UTC.
func (r *SaleRepo) ListByDateRange(ctx context.Context, storeID id.ID, from, to time.Time) ([]sales.Sale, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(saleTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.GtOrEq{"sale_date": from}).
		Where(squirrel.Lt{"sale_date": to.AddDate(0, 0, 1)}).
		OrderBy("sale_date ASC, created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []sales.Sale
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	return items, nil
}
