package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
)

func money(s string) types.Money {
	return types.MustMoney(s)
}

func TestFor(t *testing.T) {
	sale := SaleFacts{Quantity: 3, UnitPrice: money("10")}
	fees := platform.Fees{CommissionPercentage: money("10"), FixedFeePerItem: money("0.5")}
	settings := store.Settings{PaysTax: true, TaxPercentage: money("5")}

	entry := For(sale, fees, settings)

	assert.True(t, entry.Gross.Equal(money("30")), "gross: %s", entry.Gross)
	assert.True(t, entry.Commission.Equal(money("4.5")), "commission: %s", entry.Commission)
	assert.True(t, entry.Tax.Equal(money("1.5")), "tax: %s", entry.Tax)
	assert.True(t, entry.Net.Equal(money("24")), "net: %s", entry.Net)
}

func TestForPrefersStoredTotalValue(t *testing.T) {
	// A stored total wins over unitPrice * quantity (discounted sale).
	sale := SaleFacts{Quantity: 3, UnitPrice: money("10"), TotalValue: money("25")}

	entry := For(sale, platform.Fees{}, store.Settings{})

	assert.True(t, entry.Gross.Equal(money("25")))
	assert.True(t, entry.Net.Equal(money("25")))
}

func TestForNoTaxWhenStoreExempt(t *testing.T) {
	sale := SaleFacts{Quantity: 1, UnitPrice: money("100")}
	settings := store.Settings{PaysTax: false, TaxPercentage: money("5")}

	entry := For(sale, platform.Fees{}, settings)

	assert.True(t, entry.Tax.IsZero())
	assert.True(t, entry.Net.Equal(money("100")))
}

func TestForConservation(t *testing.T) {
	cases := []struct {
		name       string
		sale       SaleFacts
		fees       platform.Fees
		settings   store.Settings
	}{
		{"plain", SaleFacts{Quantity: 1, UnitPrice: money("9.99")}, platform.Fees{}, store.Settings{}},
		{"fees and tax", SaleFacts{Quantity: 7, UnitPrice: money("3.33")},
			platform.Fees{CommissionPercentage: money("12.5"), FixedFeePerItem: money("0.35")},
			store.Settings{PaysTax: true, TaxPercentage: money("7")}},
		{"stored total", SaleFacts{Quantity: 2, UnitPrice: money("10"), TotalValue: money("18")},
			platform.Fees{CommissionPercentage: money("15")},
			store.Settings{PaysTax: true, TaxPercentage: money("5")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := For(tc.sale, tc.fees, tc.settings)
			sum := entry.Gross.Sub(entry.Commission).Sub(entry.Tax)
			assert.True(t, entry.Net.Equal(sum), "net %s != gross-commission-tax %s", entry.Net, sum)
		})
	}
}

func TestForIsPure(t *testing.T) {
	sale := SaleFacts{Quantity: 3, UnitPrice: money("10")}
	fees := platform.Fees{CommissionPercentage: money("10"), FixedFeePerItem: money("0.5")}
	settings := store.Settings{PaysTax: true, TaxPercentage: money("5")}

	first := For(sale, fees, settings)
	second := For(sale, fees, settings)

	assert.Equal(t, first, second)
}

func TestFromSnapshot(t *testing.T) {
	entry := FromSnapshot(Snapshot{
		SaleFacts:  SaleFacts{Quantity: 3, UnitPrice: money("10")},
		Commission: money("4.5"),
		Tax:        money("1.5"),
	})

	assert.True(t, entry.Gross.Equal(money("30")))
	assert.True(t, entry.Net.Equal(money("24")))
}

func TestEntryAdd(t *testing.T) {
	a := Entry{Gross: money("30"), Commission: money("4.5"), Tax: money("1.5"), Net: money("24")}
	b := Entry{Gross: money("10"), Commission: money("1"), Tax: money("0.5"), Net: money("8.5")}

	sum := a.Add(b)

	assert.True(t, sum.Gross.Equal(money("40")))
	assert.True(t, sum.Commission.Equal(money("5.5")))
	assert.True(t, sum.Tax.Equal(money("2")))
	assert.True(t, sum.Net.Equal(money("32.5")))
}
