package handling

import (
	"fmt"
	"net/http"
	"rosea_server/structs"
)

// ParseProductFilter parses HTTP query parameters into a ProductFilter.
// Absent category means the "all" sentinel; absent sort means newest-first.
func ParseProductFilter(r *http.Request) (*structs.ProductFilter, error) {
	query := r.URL.Query()

	filter := &structs.ProductFilter{
		Category: structs.CategoryAll,
		Sort:     structs.SortNewest,
	}

	if category := query.Get("category"); category != "" {
		filter.Category = category
	}

	filter.Query = query.Get("q")

	if sortKey := query.Get("sort"); sortKey != "" {
		switch sortKey {
		case structs.SortNewest, structs.SortPriceAsc, structs.SortPriceDesc:
			filter.Sort = sortKey
		default:
			return nil, fmt.Errorf("unknown sort key: %s", sortKey)
		}
	}

	return filter, nil
}
