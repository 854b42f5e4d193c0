package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/stock"
)

func TestValuate(t *testing.T) {
	filaments := []filament.Filament{
		{TotalValue: types.MustMoney("20")},
		{TotalValue: types.MustMoney("36.5")},
	}
	items := []stock.Item{
		{TotalValue: types.MustMoney("10.25")},
	}
	assets := []stock.InventoryAsset{
		{Quantity: 2, PaidValue: types.MustMoney("150")},
		{Quantity: 1, PaidValue: types.MustMoney("19.99")},
	}

	v := Valuate(filaments, items, assets)

	assert.True(t, v.FilamentStock.Equal(types.MustMoney("56.5")), "filament: %s", v.FilamentStock)
	assert.True(t, v.GenericStock.Equal(types.MustMoney("10.25")), "generic: %s", v.GenericStock)
	assert.True(t, v.Inventory.Equal(types.MustMoney("319.99")), "inventory: %s", v.Inventory)
	assert.True(t, v.Total().Equal(types.MustMoney("386.74")), "total: %s", v.Total())
}

func TestValuateEmpty(t *testing.T) {
	v := Valuate(nil, nil, nil)

	assert.True(t, v.FilamentStock.IsZero())
	assert.True(t, v.GenericStock.IsZero())
	assert.True(t, v.Inventory.IsZero())
	assert.True(t, v.Total().IsZero())
}
