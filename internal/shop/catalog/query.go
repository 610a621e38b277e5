package catalog

import (
	"sort"
	"strings"
)

// Query returns the products matching the state's category and text filters,
// ordered by the state's sort mode. The input slice is left untouched.
func Query(products []Product, state State) []Product {
	category := strings.TrimSpace(state.Category)
	term := strings.ToLower(strings.TrimSpace(state.Query))

	results := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Description), term) {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, ParseSortMode(string(state.Sort)))
	return results
}

func sortProducts(products []Product, mode SortMode) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}
