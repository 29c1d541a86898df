package view

import (
	"sort"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type StatusKind string

const (
	StatusOK    StatusKind = "ok"
	StatusError StatusKind = "error"
)

const (
	MsgCatalogReady = "Catálogo cargado. Puedes filtrar y agregar al carrito."
	MsgNoResults    = "No hay resultados con ese filtro/búsqueda."
)

type Status struct {
	Kind StatusKind `json:"kind"`
	Text string     `json:"text"`
}

type ProductCard struct {
	ID         string `json:"id"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Price      int64  `json:"price"`
	PriceText  string `json:"priceText"`
	DefaultQty int    `json:"defaultQty"`
}

type ProductGrid struct {
	Status Status        `json:"status"`
	Cards  []ProductCard `json:"cards"`
}

var brandOrder = map[string]int{
	catalog.BrandNike:   1,
	catalog.BrandAdidas: 2,
	catalog.BrandPuma:   3,
}

const unknownBrandRank = 99

func brandRank(brand string) int {
	if r, ok := brandOrder[brand]; ok {
		return r
	}
	return unknownBrandRank
}

// SortByBrand returns a copy ordered Nike, Adidas, Puma, then any other
// brand, keeping the original order within a brand.
func SortByBrand(products []catalog.Product) []catalog.Product {
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return brandRank(sorted[i].Brand) < brandRank(sorted[j].Brand)
	})
	return sorted
}

// RenderProducts builds the product grid. An empty input renders no cards and
// an error status; a filter with no results is not told apart from other
// empty states.
func RenderProducts(products []catalog.Product) ProductGrid {
	if len(products) == 0 {
		return ProductGrid{
			Status: Status{Kind: StatusError, Text: MsgNoResults},
			Cards:  []ProductCard{},
		}
	}

	sorted := SortByBrand(products)
	cards := make([]ProductCard, 0, len(sorted))
	for _, p := range sorted {
		cards = append(cards, ProductCard{
			ID:         p.ID,
			Brand:      p.Brand,
			Model:      p.Model,
			Price:      p.Price,
			PriceText:  FormatCLP(p.Price),
			DefaultQty: 1,
		})
	}

	return ProductGrid{
		Status: Status{Kind: StatusOK, Text: MsgCatalogReady},
		Cards:  cards,
	}
}
