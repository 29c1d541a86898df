package catalog

import "strings"

// Filter returns the products matching the brand selector and the free-text
// query. Both conditions must hold. The input slice is never modified.
func Filter(products []Product, brand, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if brand != AllBrands && p.Brand != brand {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Model+" "+p.Brand), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
