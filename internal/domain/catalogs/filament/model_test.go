package filament

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
)

func TestPricePerGram(t *testing.T) {
	price, err := PricePerGram(types.MustMoney("25"), types.NewGramsFromFloat64(1000))
	require.NoError(t, err)
	assert.True(t, price.Equal(types.MustMoney("0.025")), "price: %s", price)

	// Repeating fraction is cut at 4 decimals.
	price, err = PricePerGram(types.MustMoney("10"), types.NewGramsFromFloat64(3))
	require.NoError(t, err)
	assert.True(t, price.Equal(types.MustMoney("3.3333")), "price: %s", price)
}

func TestPricePerGramZeroWeight(t *testing.T) {
	_, err := PricePerGram(types.MustMoney("25"), 0)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestAddPurchase(t *testing.T) {
	f, err := New(id.New(), "PLA Black", "PLA", "black", types.NewGramsFromFloat64(1000), types.MustMoney("20"))
	require.NoError(t, err)
	assert.True(t, f.PricePerGram.Equal(types.MustMoney("0.02")))

	// 500g more at a higher price: blended unit price over the full spool.
	require.NoError(t, f.AddPurchase(types.NewGramsFromFloat64(500), types.MustMoney("16")))

	assert.Equal(t, types.NewGramsFromFloat64(1500), f.CurrentStock)
	assert.True(t, f.TotalValue.Equal(types.MustMoney("36")))
	assert.True(t, f.PricePerGram.Equal(types.MustMoney("0.024")), "price: %s", f.PricePerGram)
}

func TestConsume(t *testing.T) {
	f, err := New(id.New(), "PLA", "PLA", "white", types.NewGramsFromFloat64(1000), types.MustMoney("20"))
	require.NoError(t, err)

	require.NoError(t, f.Consume(types.NewGramsFromFloat64(300)))

	assert.Equal(t, types.NewGramsFromFloat64(700), f.CurrentStock)
	assert.True(t, f.TotalValue.Equal(types.MustMoney("14")), "value: %s", f.TotalValue)
}

func TestConsumeInsufficientStock(t *testing.T) {
	f, err := New(id.New(), "PLA", "PLA", "white", types.NewGramsFromFloat64(100), types.MustMoney("2"))
	require.NoError(t, err)

	err = f.Consume(types.NewGramsFromFloat64(150))

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
}

func TestIsLowStockBoundary(t *testing.T) {
	f := &Filament{CurrentStock: types.NewGramsFromFloat64(200)}
	assert.True(t, f.IsLowStock(), "200g is at the cutoff")

	f.CurrentStock = types.NewGramsFromFloat64(201)
	assert.False(t, f.IsLowStock(), "201g is above the cutoff")
}

func TestPredictBreakage(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := PredictBreakage(types.NewGramsFromFloat64(100), types.NewGramsFromFloat64(20), 30, now)

	assert.True(t, p.WillRunOut)
	assert.Equal(t, 5, p.DaysRemaining)
	assert.Equal(t, now.AddDate(0, 0, 5), p.RunOutDate)
	// 30 days * 20g/day - 100g in stock = 500g to buy.
	assert.Equal(t, types.NewGramsFromFloat64(500), p.RecommendedGrams)
}

func TestPredictBreakageNoUsage(t *testing.T) {
	p := PredictBreakage(types.NewGramsFromFloat64(100), 0, 30, time.Now())

	assert.False(t, p.WillRunOut)
	assert.Zero(t, p.DaysRemaining)
	assert.True(t, p.RunOutDate.IsZero())
}

func TestPredictBreakageExactCoverage(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// 300g at 10g/day covers a 30-day horizon exactly: no breakage.
	p := PredictBreakage(types.NewGramsFromFloat64(300), types.NewGramsFromFloat64(10), 30, now)

	assert.False(t, p.WillRunOut)
	assert.Equal(t, 30, p.DaysRemaining)
	assert.Zero(t, p.RecommendedGrams)
}

func TestPredictBreakageCeilsRecommendation(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// 30 days * 7.5g/day = 225g projected, 100.5g in stock: 124.5g short,
	// recommended purchase rounds up to 125g.
	p := PredictBreakage(types.NewGramsFromFloat64(100.5), types.NewGramsFromFloat64(7.5), 30, now)

	assert.True(t, p.WillRunOut)
	assert.Equal(t, types.NewGramsFromFloat64(125), p.RecommendedGrams)
}

func TestPredictBreakageBeyondHorizon(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	p := PredictBreakage(types.NewGramsFromFloat64(1000), types.NewGramsFromFloat64(10), 30, now)

	assert.False(t, p.WillRunOut)
	assert.Equal(t, 100, p.DaysRemaining)
	assert.Zero(t, p.RecommendedGrams)
}
