package cart

// StorageKey is the key the cart is persisted under.
const StorageKey = "urban_sneakers_cart_v1"

// Item is one line item. Price is the catalog price at the moment the
// product was first added.
type Item struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

func (it Item) LineTotal() int64 {
	return it.Price * int64(it.Qty)
}
