package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
)

func money(s string) types.Money {
	return types.MustMoney(s)
}

func TestComputeBreakdown(t *testing.T) {
	in := CostInput{
		Filaments: []FilamentUsage{
			{FilamentID: id.New(), PricePerGram: money("0.05"), Grams: types.NewGramsFromFloat64(100)},
		},
		PrintingHours:    money("2"),
		EnergyCostPerKwh: money("0.5"),
		MarginPercent:    money("30"),
	}

	b := ComputeBreakdown(in, store.Settings{PaysTax: false})

	assert.True(t, b.FilamentCost.Equal(money("5")), "filament cost: %s", b.FilamentCost)
	assert.True(t, b.EnergyCost.Equal(money("1")), "energy cost: %s", b.EnergyCost)
	assert.True(t, b.BaseCost.Equal(money("6")), "base cost: %s", b.BaseCost)
	assert.True(t, b.PriceWithMargin.Equal(money("7.8")), "price with margin: %s", b.PriceWithMargin)
}

func TestComputeBreakdownWithTax(t *testing.T) {
	in := CostInput{
		Filaments: []FilamentUsage{
			{FilamentID: id.New(), PricePerGram: money("0.05"), Grams: types.NewGramsFromFloat64(100)},
		},
		PrintingHours:    money("2"),
		EnergyCostPerKwh: money("0.5"),
		MarginPercent:    money("30"),
	}

	b := ComputeBreakdown(in, store.Settings{PaysTax: true, TaxPercentage: money("10")})

	// 6.00 * 1.30 * 1.10 = 8.58
	assert.True(t, b.PriceWithMargin.Equal(money("8.58")), "price with margin: %s", b.PriceWithMargin)
}

func TestComputeBreakdownEmptyInput(t *testing.T) {
	b := ComputeBreakdown(CostInput{}, store.Settings{})

	assert.True(t, b.FilamentCost.IsZero())
	assert.True(t, b.EnergyCost.IsZero())
	assert.True(t, b.BaseCost.IsZero())
	assert.True(t, b.PriceWithMargin.IsZero())
}

func TestSuggestChannelPrice(t *testing.T) {
	base := money("7.8")
	fees := platform.Fees{CommissionPercentage: money("10")}

	price, degenerate := SuggestChannelPrice(base, fees)

	require.False(t, degenerate)
	// 7.80 / 0.90 ≈ 8.67
	assert.InDelta(t, 8.67, types.Round2Float(price), 0.005)
}

func TestSuggestChannelPriceReversesCommission(t *testing.T) {
	// Selling at the suggested price and paying commission + fee must leave
	// the base price, within rounding tolerance.
	cases := []struct {
		name       string
		base       string
		commission string
		fixedFee   string
	}{
		{"no fees", "10", "0", "0"},
		{"commission only", "10", "15", "0"},
		{"fee only", "10", "0", "0.75"},
		{"both", "123.45", "12.5", "1.2"},
		{"high commission", "50", "95", "2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fees := platform.Fees{
				CommissionPercentage: money(tc.commission),
				FixedFeePerItem:      money(tc.fixedFee),
			}
			price, degenerate := SuggestChannelPrice(money(tc.base), fees)
			require.False(t, degenerate)

			kept := price.Sub(types.PercentOf(price, fees.CommissionPercentage)).Sub(fees.FixedFeePerItem)
			diff := kept.Sub(money(tc.base)).Abs()
			assert.True(t, diff.LessThan(money("0.0001")), "kept %s, want %s", kept, tc.base)
		})
	}
}

func TestSuggestChannelPriceDegenerateCommission(t *testing.T) {
	base := money("6")
	fees := platform.Fees{CommissionPercentage: money("100"), FixedFeePerItem: money("0.5")}

	price, degenerate := SuggestChannelPrice(base, fees)

	assert.True(t, degenerate)
	assert.True(t, price.Equal(money("6.5")), "price: %s", price)
}

func TestRecommendedListPrice(t *testing.T) {
	channels := []Channel{
		{ID: id.New(), Name: "A", Fees: platform.Fees{CommissionPercentage: money("10")}},
		{ID: id.New(), Name: "B", Fees: platform.Fees{CommissionPercentage: money("20"), FixedFeePerItem: money("1")}},
	}

	suggestions := SuggestForChannels(money("8"), channels)
	require.Len(t, suggestions, 2)

	recommended := RecommendedListPrice(suggestions)

	// B demands the higher price: (8+1)/0.8 = 11.25 vs 8/0.9 ≈ 8.89.
	assert.True(t, recommended.Equal(suggestions[1].Price))
	assert.InDelta(t, 11.25, types.Round2Float(recommended), 0.005)
}

func TestRecommendedListPriceEmpty(t *testing.T) {
	assert.True(t, RecommendedListPrice(nil).IsZero())
}

func TestBackOutMargin(t *testing.T) {
	settings := store.Settings{PaysTax: true, TaxPercentage: money("10")}

	report := BackOutMargin(money("13.2"), money("6"), settings)

	// 13.20 / 1.10 = 12.00 before tax; profit 6.00 on cost 6.00 = 100%.
	assert.False(t, report.ZeroCost)
	assert.True(t, report.PriceBeforeTax.Equal(money("12")), "price before tax: %s", report.PriceBeforeTax)
	assert.True(t, report.Profit.Equal(money("6")), "profit: %s", report.Profit)
	assert.True(t, report.ProfitPercent.Equal(money("100")), "profit percent: %s", report.ProfitPercent)
}

func TestBackOutMarginZeroCost(t *testing.T) {
	report := BackOutMargin(money("10"), money("0"), store.Settings{})

	assert.True(t, report.ZeroCost)
	assert.True(t, report.ProfitPercent.IsZero())
	assert.True(t, report.Profit.Equal(money("10")))
}

func TestCostInputValidate(t *testing.T) {
	valid := CostInput{
		Filaments:        []FilamentUsage{{FilamentID: id.New(), PricePerGram: money("0.05"), Grams: types.NewGramsFromFloat64(10)}},
		PrintingHours:    money("1"),
		EnergyCostPerKwh: money("0.5"),
		MarginPercent:    money("20"),
	}
	require.NoError(t, valid.Validate())

	negativeHours := valid
	negativeHours.PrintingHours = money("-1")
	assert.Error(t, negativeHours.Validate())

	negativeMargin := valid
	negativeMargin.MarginPercent = money("-5")
	assert.Error(t, negativeMargin.Validate())

	negativeGrams := valid
	negativeGrams.Filaments = []FilamentUsage{{FilamentID: id.New(), PricePerGram: money("0.05"), Grams: types.NewGramsFromFloat64(-1)}}
	assert.Error(t, negativeGrams.Validate())
}
