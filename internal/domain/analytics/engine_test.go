package analytics

import (
	"context"
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
	"printdesk/internal/domain/ledger"
	"printdesk/internal/domain/sales"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// makeSale builds a sale with snapshot economics computed the same way the
// recording service does at creation time.
func makeSale(productID, platformID id.ID, qty int64, unitPrice string, saleDate time.Time, fees platform.Fees, settings store.Settings) sales.Sale {
	s := sales.Sale{
		BaseEntity: entity.BaseEntity{ID: id.New()},
		ProductID:  productID,
		PlatformID: platformID,
		Quantity:   qty,
		UnitPrice:  types.MustMoney(unitPrice),
		SaleDate:   saleDate,
	}
	s.ApplyEntry(ledger.For(s.Facts(), fees, settings))
	return s
}

func TestAggregateTrendCompleteness(t *testing.T) {
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), Input{
		Start: day(2025, 3, 1),
		End:   day(2025, 3, 10),
	})
	require.NoError(t, err)

	require.Len(t, report.Trend, 10)
	assert.Equal(t, "2025-03-01", report.Trend[0].Date)
	assert.Equal(t, "2025-03-10", report.Trend[9].Date)
	for _, b := range report.Trend {
		assert.Zero(t, b.Quantity)
		assert.True(t, b.Gross.IsZero())
		assert.True(t, b.Net.IsZero())
		assert.True(t, b.Commission.IsZero())
		assert.True(t, b.Tax.IsZero())
	}
	assert.Zero(t, report.Totals.QuantitySold)
}

func TestAggregateSingleDayRange(t *testing.T) {
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), Input{
		Start: day(2025, 3, 5),
		End:   day(2025, 3, 5),
	})
	require.NoError(t, err)

	assert.Len(t, report.Trend, 1)
}

func TestAggregateInvertedRange(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.Aggregate(context.Background(), Input{
		Start: day(2025, 3, 10),
		End:   day(2025, 3, 1),
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidDateRange, appErr.Code)
}

func testFixture() (Input, store.Settings) {
	settings := store.Settings{PaysTax: true, TaxPercentage: types.MustMoney("5")}

	etsy := platform.Platform{ID: id.New(), Name: "Etsy",
		CommissionPercentage: types.MustMoney("10"), FixedFeePerItem: types.MustMoney("0.5")}
	direct := platform.Platform{ID: id.New(), Name: "Direct"}

	pla := filament.Filament{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "PLA Black",
		CurrentStock: types.NewGramsFromFloat64(1000)}
	petg := filament.Filament{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "PETG Red",
		CurrentStock: types.NewGramsFromFloat64(150)}

	vase := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "Vase"}
	gear := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "Gear"}

	links := []product.FilamentLink{
		{ProductID: vase.ID, FilamentID: pla.ID, Grams: types.NewGramsFromFloat64(100)},
		{ProductID: gear.ID, FilamentID: pla.ID, Grams: types.NewGramsFromFloat64(20)},
		{ProductID: gear.ID, FilamentID: petg.ID, Grams: types.NewGramsFromFloat64(10)},
	}

	input := Input{
		Start: day(2025, 3, 1),
		End:   day(2025, 3, 7),
		Sales: []sales.Sale{
			makeSale(vase.ID, etsy.ID, 2, "15", day(2025, 3, 2), etsy.Fees(), settings),
			makeSale(gear.ID, direct.ID, 5, "4", day(2025, 3, 2), direct.Fees(), settings),
			makeSale(vase.ID, etsy.ID, 1, "15", day(2025, 3, 6), etsy.Fees(), settings),
		},
		Products:  []product.Product{vase, gear},
		Links:     links,
		Filaments: []filament.Filament{pla, petg},
		Platforms: []platform.Platform{etsy, direct},
	}
	return input, settings
}

func TestAggregateTotalsAndConservation(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(8), report.Totals.QuantitySold)
	// Gross: 2*15 + 5*4 + 1*15 = 65.
	assert.True(t, report.Totals.Gross.Equal(types.MustMoney("65")), "gross: %s", report.Totals.Gross)

	// net == gross - commission - tax, for the grand total and every bucket.
	sum := report.Totals.Gross.Sub(report.Totals.Commission).Sub(report.Totals.Tax)
	assert.True(t, report.Totals.Net.Equal(sum))
	for _, b := range report.Trend {
		bucketSum := b.Gross.Sub(b.Commission).Sub(b.Tax)
		assert.True(t, b.Net.Equal(bucketSum), "bucket %s", b.Date)
	}

	// Bucket sums equal the grand totals.
	bucketGross := types.Zero()
	for _, b := range report.Trend {
		bucketGross = bucketGross.Add(b.Gross)
	}
	assert.True(t, bucketGross.Equal(report.Totals.Gross))

	assert.Empty(t, report.Warnings)
}

func TestAggregateProductRollup(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 2)
	// Gear sold 5 units, Vase 3: quantity ranking puts Gear first.
	assert.Equal(t, "Gear", report.TopProducts[0].Name)
	assert.Equal(t, int64(5), report.TopProducts[0].Quantity)
	assert.Equal(t, "Vase", report.TopProducts[1].Name)
	assert.Equal(t, int64(3), report.TopProducts[1].Quantity)

	// Vase trend is day-aligned with the report trend: gross 30 on Mar 2
	// (index 1) and 15 on Mar 6 (index 5).
	vase := report.TopProducts[1]
	require.Len(t, vase.Trend, len(report.Trend))
	assert.True(t, vase.Trend[1].Equal(types.MustMoney("30")), "trend[1]: %s", vase.Trend[1])
	assert.True(t, vase.Trend[5].Equal(types.MustMoney("15")), "trend[5]: %s", vase.Trend[5])
	assert.True(t, vase.Trend[0].IsZero())
	assert.True(t, vase.Revenue.Equal(types.MustMoney("45")))
}

func TestAggregatePlatformRanking(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, report.Platforms, 2)
	// Etsy revenue 45 beats Direct 20.
	assert.Equal(t, "Etsy", report.Platforms[0].Name)
	assert.True(t, report.Platforms[0].Revenue.Equal(types.MustMoney("45")))
	// Commission: 30*0.10 + 0.5*2 = 4, plus 15*0.10 + 0.5*1 = 2.
	assert.True(t, report.Platforms[0].Commission.Equal(types.MustMoney("6")),
		"commission: %s", report.Platforms[0].Commission)
	assert.Equal(t, "Direct", report.Platforms[1].Name)
	assert.True(t, report.Platforms[1].Commission.IsZero())
}

func TestAggregateFilamentConsumption(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	// Vase: 3 units * 100g = 300g PLA. Gear: 5 * 20g PLA + 5 * 10g PETG.
	assert.Equal(t, types.NewGramsFromFloat64(450), report.Filaments.TotalUsedGrams)

	require.Len(t, report.Filaments.MostUsed, 2)
	assert.Equal(t, "PLA Black", report.Filaments.MostUsed[0].Name)
	assert.Equal(t, types.NewGramsFromFloat64(400), report.Filaments.MostUsed[0].GramsUsed)
	assert.Equal(t, "PETG Red", report.Filaments.MostUsed[1].Name)
	assert.Equal(t, types.NewGramsFromFloat64(50), report.Filaments.MostUsed[1].GramsUsed)
}

func TestAggregateLowStock(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	// Only PETG (150g) is at or below the 200g cutoff.
	require.Len(t, report.Filaments.LowStock, 1)
	assert.Equal(t, "PETG Red", report.Filaments.LowStock[0].Name)
}

func TestAggregateLowStockBoundary(t *testing.T) {
	engine := NewEngine(nil)
	input := Input{
		Start: day(2025, 3, 1),
		End:   day(2025, 3, 1),
		Filaments: []filament.Filament{
			{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "At cutoff", CurrentStock: types.NewGramsFromFloat64(200)},
			{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "Above cutoff", CurrentStock: types.NewGramsFromFloat64(201)},
		},
	}

	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, report.Filaments.LowStock, 1)
	assert.Equal(t, "At cutoff", report.Filaments.LowStock[0].Name)
}

func TestAggregateIdempotence(t *testing.T) {
	input, _ := testFixture()
	engine := NewEngine(nil)

	first, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)
	second, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateDeterministicTies(t *testing.T) {
	settings := store.Settings{}
	ch := platform.Platform{ID: id.New(), Name: "Shop"}
	first := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "First"}
	second := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "Second"}

	input := Input{
		Start: day(2025, 3, 1),
		End:   day(2025, 3, 2),
		Sales: []sales.Sale{
			makeSale(first.ID, ch.ID, 2, "10", day(2025, 3, 1), ch.Fees(), settings),
			makeSale(second.ID, ch.ID, 2, "10", day(2025, 3, 1), ch.Fees(), settings),
		},
		Products:  []product.Product{first, second},
		Platforms: []platform.Platform{ch},
	}

	engine := NewEngine(nil)
	for i := 0; i < 5; i++ {
		report, err := engine.Aggregate(context.Background(), input)
		require.NoError(t, err)
		require.Len(t, report.TopProducts, 2)
		// Equal quantities keep first-seen input order.
		assert.Equal(t, "First", report.TopProducts[0].Name)
		assert.Equal(t, "Second", report.TopProducts[1].Name)
	}
}

func TestAggregateTopFiveProducts(t *testing.T) {
	settings := store.Settings{}
	ch := platform.Platform{ID: id.New(), Name: "Shop"}

	var products []product.Product
	var saleList []sales.Sale
	for i := 0; i < 7; i++ {
		p := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "P"}
		products = append(products, p)
		saleList = append(saleList, makeSale(p.ID, ch.ID, int64(i+1), "10", day(2025, 3, 1), ch.Fees(), settings))
	}

	engine := NewEngine(nil)
	report, err := engine.Aggregate(context.Background(), Input{
		Start:     day(2025, 3, 1),
		End:       day(2025, 3, 1),
		Sales:     saleList,
		Products:  products,
		Platforms: []platform.Platform{ch},
	})
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 5)
	assert.Equal(t, int64(7), report.TopProducts[0].Quantity)
	assert.Equal(t, int64(3), report.TopProducts[4].Quantity)
}

func TestAggregateReferentialGaps(t *testing.T) {
	settings := store.Settings{}
	ch := platform.Platform{ID: id.New(), Name: "Shop"}
	missingProduct := id.New()
	missingPlatform := id.New()
	known := product.Product{BaseEntity: entity.BaseEntity{ID: id.New()}, Name: "Known"}

	input := Input{
		Start: day(2025, 3, 1),
		End:   day(2025, 3, 1),
		Sales: []sales.Sale{
			makeSale(missingProduct, ch.ID, 1, "10", day(2025, 3, 1), ch.Fees(), settings),
			makeSale(known.ID, missingPlatform, 2, "5", day(2025, 3, 1), platform.Fees{}, settings),
		},
		Products:  []product.Product{known},
		Platforms: []platform.Platform{ch},
	}

	engine := NewEngine(nil)
	report, err := engine.Aggregate(context.Background(), input)
	require.NoError(t, err)

	// Grand totals still include both sales.
	assert.Equal(t, int64(3), report.Totals.QuantitySold)
	assert.True(t, report.Totals.Gross.Equal(types.MustMoney("20")))

	// The affected dimensions skip them.
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "Known", report.TopProducts[0].Name)
	require.Len(t, report.Platforms, 1)
	assert.True(t, report.Platforms[0].Revenue.Equal(types.MustMoney("10")))

	require.Len(t, report.Warnings, 2)
	assert.Equal(t, "product", report.Warnings[0].Dimension)
	assert.Equal(t, missingProduct, report.Warnings[0].RefID)
	assert.Equal(t, "platform", report.Warnings[1].Dimension)
	assert.Equal(t, missingPlatform, report.Warnings[1].RefID)
}
