package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	platforms []Platform
}

func (r *fakeRepo) Create(_ context.Context, p *Platform) error {
	r.platforms = append(r.platforms, *p)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, platformID id.ID) (*Platform, error) {
	for i := range r.platforms {
		if r.platforms[i].ID == platformID {
			return &r.platforms[i], nil
		}
	}
	return nil, apperror.NewNotFound("platform", platformID.String())
}

func (r *fakeRepo) Update(_ context.Context, _ *Platform) error { return nil }

func (r *fakeRepo) Delete(_ context.Context, _ id.ID) error { return nil }

func (r *fakeRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Platform], error) {
	return domain.ListResult[*Platform]{}, nil
}

func (r *fakeRepo) Exists(_ context.Context, platformID id.ID) (bool, error) {
	_, err := r.GetByID(context.Background(), platformID)
	return err == nil, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]Platform, error) {
	return r.platforms, nil
}

func TestGetManyPreservesInputOrder(t *testing.T) {
	etsy := New("Etsy", types.MustMoney("9.5"), types.MustMoney("0.25"))
	ebay := New("eBay", types.MustMoney("13"), types.MustMoney("0.35"))
	repo := &fakeRepo{platforms: []Platform{*etsy, *ebay}}
	svc := NewService(repo, fakeTxManager{}, nil)

	out, err := svc.GetMany(context.Background(), []id.ID{ebay.ID, etsy.ID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "eBay", out[0].Name)
	assert.Equal(t, "Etsy", out[1].Name)
}

func TestGetManyUnknownIDIsNotFound(t *testing.T) {
	etsy := New("Etsy", types.MustMoney("9.5"), types.MustMoney("0.25"))
	repo := &fakeRepo{platforms: []Platform{*etsy}}
	svc := NewService(repo, fakeTxManager{}, nil)

	unknown := id.New()
	out, err := svc.GetMany(context.Background(), []id.ID{etsy.ID, unknown})

	// A request naming a nonexistent channel must fail instead of quietly
	// pricing against fewer channels.
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Nil(t, out)
}
