package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/infrastructure/storage/postgres"
)

const storeTable = "cat_store"

// StoreRepo implements store.Repository.
type StoreRepo struct {
	*BaseCatalogRepo[*store.Store]
}

// NewStoreRepo creates a new store repository.
func NewStoreRepo(txManager *postgres.TxManager) *StoreRepo {
	return &StoreRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*store.Store](
			txManager,
			storeTable,
			postgres.ExtractDBColumns[store.Store](),
			func() *store.Store { return &store.Store{} },
		),
	}
}

// GetByOwner retrieves the store owned by the given user.
func (r *StoreRepo) GetByOwner(ctx context.Context, ownerUserID id.ID) (*store.Store, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"owner_user_id": ownerUserID}).
		Limit(1)

	st, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("store", ownerUserID.String())
		}
		return nil, err
	}
	return st, nil
}
