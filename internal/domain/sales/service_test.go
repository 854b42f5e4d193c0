package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/catalogs/store"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	created []*Sale
}

func (r *fakeRepo) Create(_ context.Context, s *Sale) error {
	r.created = append(r.created, s)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, saleID id.ID) (*Sale, error) {
	for _, s := range r.created {
		if s.ID == saleID {
			return s, nil
		}
	}
	return nil, apperror.NewNotFound("sale", saleID.String())
}

func (r *fakeRepo) ListByDateRange(_ context.Context, storeID id.ID, from, to time.Time) ([]Sale, error) {
	var out []Sale
	for _, s := range r.created {
		if s.StoreID == storeID && !s.SaleDate.Before(from) && !s.SaleDate.After(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeProducts struct {
	product *product.Product
	links   []product.FilamentLink
}

func (f *fakeProducts) GetByID(_ context.Context, productID id.ID) (*product.Product, error) {
	if f.product == nil || f.product.ID != productID {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return f.product, nil
}

func (f *fakeProducts) ListLinks(_ context.Context, _ []id.ID) ([]product.FilamentLink, error) {
	return f.links, nil
}

type fakePlatforms struct {
	platform *platform.Platform
}

func (f *fakePlatforms) GetByID(_ context.Context, platformID id.ID) (*platform.Platform, error) {
	if f.platform == nil || f.platform.ID != platformID {
		return nil, apperror.NewNotFound("platform", platformID.String())
	}
	return f.platform, nil
}

type fakeSettings struct {
	settings store.Settings
}

func (f *fakeSettings) Settings(_ context.Context, _ id.ID) (store.Settings, error) {
	return f.settings, nil
}

type fakeStock struct {
	consumed map[id.ID]types.Grams
}

func (f *fakeStock) Consume(_ context.Context, filamentID id.ID, grams types.Grams) (*filament.Filament, error) {
	if f.consumed == nil {
		f.consumed = make(map[id.ID]types.Grams)
	}
	f.consumed[filamentID] = f.consumed[filamentID].Add(grams)
	return &filament.Filament{}, nil
}

func newTestService(repo *fakeRepo, products *fakeProducts, platforms *fakePlatforms, settings *fakeSettings, stock *fakeStock) *Service {
	return NewService(repo, products, platforms, settings, stock, fakeTxManager{}, nil)
}

func TestRecordSnapshotEconomics(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Benchy")
	prod.FinalPrice = types.MustMoney("20.00")
	plat := platform.New("Etsy", types.MustMoney("10"), types.MustMoney("0.50"))

	repo := &fakeRepo{}
	stock := &fakeStock{}
	svc := newTestService(repo,
		&fakeProducts{product: prod},
		&fakePlatforms{platform: plat},
		&fakeSettings{settings: store.Settings{
			PaysTax:       true,
			TaxPercentage: types.MustMoney("21"),
		}},
		stock,
	)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sale, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   2,
		UnitPrice:  types.MustMoney("25.00"),
		Now:        now,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	// gross = 25 * 2 = 50
	// commission = 50 * 10% + 0.50 * 2 = 6
	// tax = 50 * 21% = 10.50
	// net = 50 - 6 - 10.50 = 33.50
	assert.True(t, sale.TotalValue.Equal(types.MustMoney("50")), "gross %s", sale.TotalValue)
	assert.True(t, sale.CommissionValue.Equal(types.MustMoney("6")), "commission %s", sale.CommissionValue)
	assert.True(t, sale.TaxValue.Equal(types.MustMoney("10.5")), "tax %s", sale.TaxValue)
	assert.True(t, sale.NetValue.Equal(types.MustMoney("33.5")), "net %s", sale.NetValue)
	assert.Equal(t, now, sale.SaleDate, "sale date defaults to injected now")
}

func TestRecordFallsBackToProductPrice(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Vase")
	prod.FinalPrice = types.MustMoney("12.40")
	plat := platform.New("Direct", types.Zero(), types.Zero())

	svc := newTestService(&fakeRepo{},
		&fakeProducts{product: prod},
		&fakePlatforms{platform: plat},
		&fakeSettings{},
		&fakeStock{},
	)

	sale, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   3,
		Now:        time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.True(t, sale.UnitPrice.Equal(types.MustMoney("12.40")))
	assert.True(t, sale.TotalValue.Equal(types.MustMoney("37.20")))
	// No commission, no tax: net equals gross.
	assert.True(t, sale.NetValue.Equal(sale.TotalValue))
}

func TestRecordConsumesFilamentPerUnit(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Bracket")
	prod.FinalPrice = types.MustMoney("5.00")
	plat := platform.New("Direct", types.Zero(), types.Zero())

	pla := id.New()
	tpu := id.New()
	links := []product.FilamentLink{
		{ProductID: prod.ID, FilamentID: pla, Grams: types.NewGramsFromFloat64(12.5)},
		{ProductID: prod.ID, FilamentID: tpu, Grams: types.NewGramsFromFloat64(3)},
	}

	stock := &fakeStock{}
	svc := newTestService(&fakeRepo{},
		&fakeProducts{product: prod, links: links},
		&fakePlatforms{platform: plat},
		&fakeSettings{},
		stock,
	)

	_, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   4,
		Now:        time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.Equal(t, types.NewGramsFromFloat64(50), stock.consumed[pla])
	assert.Equal(t, types.NewGramsFromFloat64(12), stock.consumed[tpu])
}

func TestRecordRejectsUnknownProduct(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeProducts{}, &fakePlatforms{}, &fakeSettings{}, &fakeStock{})

	_, err := svc.Record(context.Background(), RecordInput{
		StoreID:    id.New(),
		ProductID:  id.New(),
		PlatformID: id.New(),
		Quantity:   1,
		Now:        time.Now().UTC(),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecordRejectsInvalidQuantity(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Clip")
	prod.FinalPrice = types.MustMoney("2.00")
	plat := platform.New("Direct", types.Zero(), types.Zero())

	repo := &fakeRepo{}
	svc := newTestService(repo,
		&fakeProducts{product: prod},
		&fakePlatforms{platform: plat},
		&fakeSettings{},
		&fakeStock{},
	)

	_, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   0,
		Now:        time.Now().UTC(),
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestRecordRunsAfterCreateHooks(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Benchy")
	prod.FinalPrice = types.MustMoney("20.00")
	plat := platform.New("Direct", types.Zero(), types.Zero())

	repo := &fakeRepo{}
	svc := newTestService(repo,
		&fakeProducts{product: prod},
		&fakePlatforms{platform: plat},
		&fakeSettings{},
		&fakeStock{},
	)

	var seen []*Sale
	svc.Hooks().OnAfterCreate(func(_ context.Context, s *Sale) error {
		seen = append(seen, s)
		return nil
	})

	sale, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   1,
		Now:        time.Now().UTC(),
	})
	require.NoError(t, err)

	// The hook sees the persisted sale, so change listeners can capture it.
	require.Len(t, seen, 1)
	assert.Equal(t, sale.ID, seen[0].ID)
	assert.True(t, seen[0].NetValue.Equal(sale.NetValue))
}

func TestRecordHookFailureDoesNotFailRecording(t *testing.T) {
	storeID := id.New()
	prod := product.New(storeID, "Vase")
	prod.FinalPrice = types.MustMoney("10.00")
	plat := platform.New("Direct", types.Zero(), types.Zero())

	repo := &fakeRepo{}
	svc := newTestService(repo,
		&fakeProducts{product: prod},
		&fakePlatforms{platform: plat},
		&fakeSettings{},
		&fakeStock{},
	)
	svc.Hooks().OnAfterCreate(func(_ context.Context, _ *Sale) error {
		return errors.New("audit sink unavailable")
	})

	_, err := svc.Record(context.Background(), RecordInput{
		StoreID:    storeID,
		ProductID:  prod.ID,
		PlatformID: plat.ID,
		Quantity:   1,
		Now:        time.Now().UTC(),
	})
	require.NoError(t, err, "the sale is already recorded when hooks run")
	assert.Len(t, repo.created, 1)
}

func TestListByDateRangeScopesToStore(t *testing.T) {
	storeID := id.New()
	otherStore := id.New()
	repo := &fakeRepo{
		created: []*Sale{
			{BaseEntity: entity.NewBaseEntity(storeID), SaleDate: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
			{BaseEntity: entity.NewBaseEntity(otherStore), SaleDate: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestService(repo, &fakeProducts{}, &fakePlatforms{}, &fakeSettings{}, &fakeStock{})

	items, err := svc.ListByDateRange(context.Background(),
		storeID,
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, storeID, items[0].StoreID)
}
