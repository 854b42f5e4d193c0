package filament

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
	byID    map[id.ID]*Filament
	updates int
}

func newFakeRepo(filaments ...*Filament) *fakeRepo {
	r := &fakeRepo{byID: make(map[id.ID]*Filament)}
	for _, f := range filaments {
		r.byID[f.ID] = f
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, f *Filament) error {
	r.byID[f.ID] = f
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, filamentID id.ID) (*Filament, error) {
	f, ok := r.byID[filamentID]
	if !ok {
		return nil, apperror.NewNotFound("filament", filamentID.String())
	}
	return f, nil
}

func (r *fakeRepo) Update(_ context.Context, f *Filament) error {
	if _, ok := r.byID[f.ID]; !ok {
		return apperror.NewNotFound("filament", f.ID.String())
	}
	r.byID[f.ID] = f
	r.updates++
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, filamentID id.ID) error {
	delete(r.byID, filamentID)
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Filament], error) {
	return domain.ListResult[*Filament]{}, nil
}

func (r *fakeRepo) Exists(_ context.Context, filamentID id.ID) (bool, error) {
	_, ok := r.byID[filamentID]
	return ok, nil
}

func (r *fakeRepo) ListByStore(_ context.Context, _ id.ID) ([]Filament, error) {
	out := make([]Filament, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeRepo) FindLowStock(_ context.Context, _ id.ID) ([]Filament, error) {
	var out []Filament
	for _, f := range r.byID {
		if f.IsLowStock() {
			out = append(out, *f)
		}
	}
	return out, nil
}

func newSpool(t *testing.T) *Filament {
	t.Helper()
	f, err := New(id.New(), "PLA Black", "PLA", "black",
		types.NewGramsFromFloat64(1000), types.MustMoney("25.00"))
	require.NoError(t, err)
	return f
}

func TestConsumeRunsAfterUpdateHooks(t *testing.T) {
	spool := newSpool(t)
	repo := newFakeRepo(spool)
	svc := NewService(repo, fakeTxManager{}, nil)

	var seen []*Filament
	svc.Hooks().OnAfterUpdate(func(_ context.Context, f *Filament) error {
		seen = append(seen, f)
		return nil
	})

	out, err := svc.Consume(context.Background(), spool.ID, types.NewGramsFromFloat64(120))
	require.NoError(t, err)

	// Change listeners see the updated spool even though Consume writes
	// through the repository directly.
	require.Len(t, seen, 1)
	assert.Equal(t, spool.ID, seen[0].ID)
	assert.Equal(t, types.NewGramsFromFloat64(880), seen[0].CurrentStock)
	assert.Equal(t, out, seen[0])
	assert.Equal(t, 1, repo.updates)
}

func TestPurchaseRunsAfterUpdateHooks(t *testing.T) {
	spool := newSpool(t)
	repo := newFakeRepo(spool)
	svc := NewService(repo, fakeTxManager{}, nil)

	hookRuns := 0
	svc.Hooks().OnAfterUpdate(func(_ context.Context, f *Filament) error {
		hookRuns++
		assert.Equal(t, types.NewGramsFromFloat64(2000), f.CurrentStock)
		return nil
	})

	_, err := svc.Purchase(context.Background(), spool.ID,
		types.NewGramsFromFloat64(1000), types.MustMoney("30.00"))
	require.NoError(t, err)
	assert.Equal(t, 1, hookRuns)
}

func TestConsumeFailureSkipsHooks(t *testing.T) {
	spool := newSpool(t)
	repo := newFakeRepo(spool)
	svc := NewService(repo, fakeTxManager{}, nil)

	hookRuns := 0
	svc.Hooks().OnAfterUpdate(func(_ context.Context, _ *Filament) error {
		hookRuns++
		return nil
	})

	_, err := svc.Consume(context.Background(), spool.ID, types.NewGramsFromFloat64(5000))
	require.Error(t, err)
	assert.Zero(t, hookRuns)
	assert.Zero(t, repo.updates)
}
