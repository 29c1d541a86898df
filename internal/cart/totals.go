package cart

// ShippingFee is charged on any non-empty cart.
const ShippingFee int64 = 4990

type Totals struct {
	Count    int   `json:"count"`
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

func Subtotal(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

func Shipping(subtotal int64) int64 {
	if subtotal > 0 {
		return ShippingFee
	}
	return 0
}

// Count is the number of units in the cart, used for the cart badge.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Qty
	}
	return n
}

func Summarize(items []Item) Totals {
	subtotal := Subtotal(items)
	shipping := Shipping(subtotal)
	return Totals{
		Count:    Count(items),
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
