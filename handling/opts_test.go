package handling

import (
	"net/http/httptest"
	"testing"

	"rosea_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFilterDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	filter, err := ParseProductFilter(r)
	require.NoError(t, err)
	assert.Equal(t, structs.CategoryAll, filter.Category)
	assert.Equal(t, structs.SortNewest, filter.Sort)
	assert.Empty(t, filter.Query)
}

func TestParseProductFilterExplicitValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?category=%D8%A7%D9%83%D8%B3%D8%B3%D9%88%D8%A7%D8%B1%D8%A7%D8%AA&q=%D8%B4%D8%B1%D9%8A%D8%B7&sort=price-asc", nil)

	filter, err := ParseProductFilter(r)
	require.NoError(t, err)
	assert.Equal(t, structs.CategoryAccessories, filter.Category)
	assert.Equal(t, "شريط", filter.Query)
	assert.Equal(t, structs.SortPriceAsc, filter.Sort)
}

func TestParseProductFilterRejectsUnknownSort(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?sort=alphabetical", nil)

	_, err := ParseProductFilter(r)
	assert.Error(t, err)
}
