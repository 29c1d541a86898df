package catalog

const (
	BrandNike   = "Nike"
	BrandAdidas = "Adidas"
	BrandPuma   = "Puma"

	// AllBrands is the brand selector value that disables brand filtering.
	AllBrands = "all"
)

type Product struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Price int64  `json:"price"`
}

var fallbackProducts = []Product{
	{ID: "nk-001", Brand: BrandNike, Model: "Air Force 1", Price: 89990},
	{ID: "nk-002", Brand: BrandNike, Model: "Dunk Low", Price: 109990},
	{ID: "nk-003", Brand: BrandNike, Model: "Air Max 90", Price: 129990},
	{ID: "ad-001", Brand: BrandAdidas, Model: "Stan Smith", Price: 74990},
	{ID: "ad-002", Brand: BrandAdidas, Model: "Superstar", Price: 84990},
	{ID: "ad-003", Brand: BrandAdidas, Model: "Forum Low", Price: 99990},
	{ID: "pm-001", Brand: BrandPuma, Model: "Suede Classic", Price: 69990},
	{ID: "pm-002", Brand: BrandPuma, Model: "RS-X", Price: 94990},
	{ID: "pm-003", Brand: BrandPuma, Model: "Cali Star", Price: 79990},
}

// FallbackProducts returns a fresh copy of the built-in catalog used when the
// catalog resource is unavailable or empty.
func FallbackProducts() []Product {
	out := make([]Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

// Find returns the product with the given id.
func Find(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
