package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"printdesk/internal/core/entity"
	"printdesk/internal/core/id"
)

type MockCatalog struct {
	entity.BaseEntity
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
	skip  string //nolint:unused // no db tag, must not be extracted
}

func TestExtractDBColumns_EmbeddedFields(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "store_id", "version", "created_at", "updated_at", "name", "color",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap_EmbeddedFields(t *testing.T) {
	storeID := id.New()
	cat := MockCatalog{
		BaseEntity: entity.NewBaseEntity(storeID),
		Name:       "Test Name",
		Color:      "red",
	}
	cat.Version = 5

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, storeID, m["store_id"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, "red", m["color"])
	assert.NotContains(t, m, "skip")
}
