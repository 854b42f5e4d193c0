package catalog_repo

import (
	"context"

	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/infrastructure/storage/postgres"
)

const platformTable = "cat_platform"

// PlatformRepo implements platform.Repository. Platforms are global rows,
// so no store_id filtering applies.
type PlatformRepo struct {
	*BaseCatalogRepo[*platform.Platform]
}

// NewPlatformRepo creates a new platform repository.
func NewPlatformRepo(txManager *postgres.TxManager) *PlatformRepo {
	return &PlatformRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*platform.Platform](
			txManager,
			platformTable,
			postgres.ExtractDBColumns[platform.Platform](),
			func() *platform.Platform { return &platform.Platform{} },
		),
	}
}

// ListAll retrieves every platform.
func (r *PlatformRepo) ListAll(ctx context.Context) ([]platform.Platform, error) {
	q := r.baseSelect().OrderBy("name ASC")

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}
